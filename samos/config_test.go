// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package samos_test

import (
	"bytes"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"github.com/absmach/samos-exporter/pkg/errors"
	"github.com/absmach/samos-exporter/samos"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validConfig = `
callsign: KAOU
measurements:
  - met
  - nav
fields:
  AT: Temp
  BP: Pressure
  WS: WindSpeed
  WD: WindDirection
  LA: Latitude
  LO: Longitude
`

func testLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelWarn}))
}

func TestParseConfig(t *testing.T) {
	cfg, err := samos.ParseConfig([]byte(validConfig))
	require.NoError(t, err, fmt.Sprintf("unexpected error %s", err))

	assert.Equal(t, "KAOU", cfg.Callsign, fmt.Sprintf("expected KAOU got %s", cfg.Callsign))
	assert.Equal(t, []string{"met", "nav"}, cfg.Measurements, fmt.Sprintf("unexpected measurements %v", cfg.Measurements))

	expected := samos.FieldMappings{
		{Code: "AT", Source: "Temp"},
		{Code: "BP", Source: "Pressure"},
		{Code: "WS", Source: "WindSpeed"},
		{Code: "WD", Source: "WindDirection"},
		{Code: "LA", Source: "Latitude"},
		{Code: "LO", Source: "Longitude"},
	}
	assert.Equal(t, expected, cfg.Fields, fmt.Sprintf("expected document order to be preserved, got %v", cfg.Fields))
	assert.Equal(t, []string{"Temp", "Pressure", "WindSpeed", "WindDirection", "Latitude", "Longitude"}, cfg.SourceFields(), "unexpected source field order")
}

func TestParseConfigInvalid(t *testing.T) {
	cases := []struct {
		desc string
		data string
	}{
		{
			desc: "fields as a sequence",
			data: "callsign: KAOU\nmeasurements: [met]\nfields:\n  - AT\n",
		},
		{
			desc: "broken YAML syntax",
			data: "callsign: [unterminated\n",
		},
	}

	for _, tc := range cases {
		_, err := samos.ParseConfig([]byte(tc.data))
		assert.True(t, errors.Contains(err, errors.ErrInvalidConfig), fmt.Sprintf("%s: expected %s got %s", tc.desc, errors.ErrInvalidConfig, err))
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		desc string
		cfg  samos.Config
		err  error
	}{
		{
			desc: "valid configuration",
			cfg: samos.Config{
				Callsign:     "KAOU",
				Measurements: []string{"met"},
				Fields:       samos.FieldMappings{{Code: "AT", Source: "Temp"}},
			},
		},
		{
			desc: "empty callsign",
			cfg: samos.Config{
				Measurements: []string{"met"},
				Fields:       samos.FieldMappings{{Code: "AT", Source: "Temp"}},
			},
			err: errors.ErrEmptyCallsign,
		},
		{
			desc: "empty measurement set",
			cfg: samos.Config{
				Callsign: "KAOU",
				Fields:   samos.FieldMappings{{Code: "AT", Source: "Temp"}},
			},
			err: errors.ErrEmptyQuerySpec,
		},
		{
			desc: "empty field mapping",
			cfg: samos.Config{
				Callsign:     "KAOU",
				Measurements: []string{"met"},
			},
			err: errors.ErrEmptyQuerySpec,
		},
	}

	for _, tc := range cases {
		var buf bytes.Buffer
		err := tc.cfg.Validate(testLogger(&buf))
		if tc.err != nil {
			assert.True(t, errors.Contains(err, tc.err), fmt.Sprintf("%s: expected %s got %s", tc.desc, tc.err, err))
			continue
		}
		assert.NoError(t, err, fmt.Sprintf("%s: unexpected error %s", tc.desc, err))
	}
}

func TestValidateUnknownCode(t *testing.T) {
	cfg := samos.Config{
		Callsign:     "KAOU",
		Measurements: []string{"met"},
		Fields: samos.FieldMappings{
			{Code: "AT", Source: "Temp"},
			{Code: "ZZ", Source: "Mystery"},
		},
	}

	var buf bytes.Buffer
	err := cfg.Validate(testLogger(&buf))
	assert.NoError(t, err, fmt.Sprintf("unexpected error %s", err))

	warnings := strings.Count(buf.String(), "not a standard SAMOS field identifier")
	assert.Equal(t, 1, warnings, fmt.Sprintf("expected exactly one warning got %d", warnings))
	assert.Contains(t, buf.String(), "ZZ", "expected the warning to name the unknown code")
}
