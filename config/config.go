// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package config loads an optional YAML settings file. Values present in
// the file override the environment-derived defaults; everything else is
// left untouched.
package config

import (
	"github.com/absmach/samos-exporter/internal/clients/influxdb"
	"github.com/absmach/samos-exporter/internal/email"
	"github.com/absmach/samos-exporter/pkg/errors"
	"github.com/absmach/samos-exporter/samos/smtp"
	"github.com/spf13/viper"
)

var errReadSettings = errors.New("failed to read settings file")

// Settings is a loaded settings file.
type Settings struct {
	v *viper.Viper
}

// Load reads the settings file at path.
func Load(path string) (*Settings, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrap(errReadSettings, err)
	}

	return &Settings{v: v}, nil
}

// ApplyInflux overrides the InfluxDB client configuration.
func (s *Settings) ApplyInflux(cfg *influxdb.Config) {
	s.setString("influx.url", &cfg.URL)
	s.setString("influx.org", &cfg.Org)
	s.setString("influx.bucket", &cfg.Bucket)
	s.setString("influx.token", &cfg.Token)
	if s.v.IsSet("influx.timeout") {
		cfg.Timeout = s.v.GetDuration("influx.timeout")
	}
}

// ApplyEmail overrides the e-mail agent configuration.
func (s *Settings) ApplyEmail(cfg *email.Config) {
	s.setString("email.host", &cfg.Host)
	s.setString("email.port", &cfg.Port)
	s.setString("email.username", &cfg.Username)
	s.setString("email.password", &cfg.Password)
	s.setString("email.from_address", &cfg.FromAddress)
	s.setString("email.from_name", &cfg.FromName)
}

// ApplyMailer overrides the report mailing configuration.
func (s *Settings) ApplyMailer(cfg *smtp.Config) {
	s.setStrings("mailer.to", &cfg.To)
	s.setStrings("mailer.cc", &cfg.Cc)
	s.setString("mailer.subject", &cfg.Subject)
	s.setString("mailer.body", &cfg.Body)
}

// ApplyExport overrides the file delivery options.
func (s *Settings) ApplyExport(destDir, filePrefix *string) {
	s.setString("export.dest_dir", destDir)
	s.setString("export.file_prefix", filePrefix)
}

func (s *Settings) setString(key string, dst *string) {
	if s.v.IsSet(key) {
		*dst = s.v.GetString(key)
	}
}

func (s *Settings) setStrings(key string, dst *[]string) {
	if s.v.IsSet(key) {
		*dst = s.v.GetStringSlice(key)
	}
}
