// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package samos

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/absmach/samos-exporter/pkg/errors"
	"gopkg.in/yaml.v3"
)

var errFieldsNotMapping = errors.New("fields must be a mapping of SAMOS code to source field name")

// FieldMapping binds one SAMOS output code to the source field name
// holding its value in the store.
type FieldMapping struct {
	Code   string
	Source string
}

// FieldMappings preserves the order in which mappings are declared in the
// configuration document. That order fixes the token order of every
// emitted record.
type FieldMappings []FieldMapping

func (fm *FieldMappings) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return errFieldsNotMapping
	}

	mappings := make(FieldMappings, 0, len(value.Content)/2)
	for i := 0; i+1 < len(value.Content); i += 2 {
		var m FieldMapping
		if err := value.Content[i].Decode(&m.Code); err != nil {
			return err
		}
		if err := value.Content[i+1].Decode(&m.Source); err != nil {
			return err
		}
		mappings = append(mappings, m)
	}
	*fm = mappings

	return nil
}

// Config describes one export job.
type Config struct {
	Callsign     string        `yaml:"callsign"`
	Measurements []string      `yaml:"measurements"`
	Fields       FieldMappings `yaml:"fields"`
}

// ParseConfig decodes an export configuration from a YAML document.
func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrap(errors.ErrInvalidConfig, err)
	}

	return cfg, nil
}

// ReadConfig decodes an export configuration from a YAML file.
func ReadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrInvalidConfig, err)
	}

	return ParseConfig(data)
}

// Validate checks the configuration before a run. Empty callsign,
// measurement set or field mapping is fatal. Unrecognized field codes are
// surfaced as one warning each and never block the run.
func (c Config) Validate(logger *slog.Logger) error {
	if c.Callsign == "" {
		return errors.ErrEmptyCallsign
	}
	if len(c.Measurements) == 0 || len(c.Fields) == 0 {
		return errors.ErrEmptyQuerySpec
	}

	for _, m := range c.Fields {
		if !IsKnownField(m.Code) {
			logger.Warn(fmt.Sprintf("field %s is not a standard SAMOS field identifier", m.Code))
		}
	}

	return nil
}

// SourceFields returns the source field names in mapping order.
func (c Config) SourceFields() []string {
	fields := make([]string, 0, len(c.Fields))
	for _, m := range c.Fields {
		fields = append(fields, m.Source)
	}

	return fields
}
