// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package main contains the samos-exporter command: it pulls one UTC day
// of observations from InfluxDB, assembles SAMOS records and delivers
// them to stdout, a file, an e-mail recipient, or any combination.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/absmach/samos-exporter/config"
	influxclient "github.com/absmach/samos-exporter/internal/clients/influxdb"
	"github.com/absmach/samos-exporter/internal/email"
	"github.com/absmach/samos-exporter/internal/env"
	mglog "github.com/absmach/samos-exporter/logger"
	"github.com/absmach/samos-exporter/pkg/errors"
	"github.com/absmach/samos-exporter/samos"
	influxstore "github.com/absmach/samos-exporter/samos/influxdb"
	"github.com/absmach/samos-exporter/samos/smtp"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

const (
	envPrefixInflux = "SAMOS_INFLUX_"
	envPrefixEmail  = "SAMOS_EMAIL_"
	envPrefixMailer = "SAMOS_MAILER_"
	envPrefixExport = "SAMOS_EXPORTER_"
)

// Default export configuration, used when no config file is given.
const defExportConfig = `
callsign: KAOU
measurements:
  - met
fields:
  AT: Temp
  BP: Pressure
  RH: Humidity
  WS: WindSpeed
  WD: WindDirection
  LA: Latitude
  LO: Longitude
  GY: Heading
  CR: CourseOverGround
  SP: SpeedOverGround
`

type exportConfig struct {
	LogLevel   string `env:"LOG_LEVEL"   envDefault:"warn"`
	DestDir    string `env:"DEST_DIR"    envDefault:"."`
	FilePrefix string `env:"FN_PREFIX"   envDefault:"SAMOS"`
}

type options struct {
	date       string
	configFile string
	settings   string
	sendEmail  bool
	saveFile   bool
	logLevel   string
	quiet      bool
}

func main() {
	opts := options{}

	rootCmd := &cobra.Command{
		Use:          "samos-exporter",
		Short:        "Export InfluxDB observations in the SAMOS interchange format",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), opts)
		},
	}

	yesterday := time.Now().UTC().AddDate(0, 0, -1).Format(time.DateOnly)
	rootCmd.Flags().StringVarP(&opts.date, "date", "d", yesterday, "Date of data to export (YYYY-MM-DD)")
	rootCmd.Flags().StringVarP(&opts.configFile, "config-file", "f", "", "Export configuration file")
	rootCmd.Flags().StringVar(&opts.settings, "settings", "", "Settings file overriding environment configuration")
	rootCmd.Flags().BoolVarP(&opts.sendEmail, "email", "e", false, "Send email containing exported data to SAMOS")
	rootCmd.Flags().BoolVarP(&opts.saveFile, "save", "s", false, "Save exported data to file")
	rootCmd.Flags().StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "Reduce output verbosity")

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context, opts options) error {
	cfg := exportConfig{}
	if err := env.Parse(&cfg, env.Options{Prefix: envPrefixExport}); err != nil {
		log.Printf("failed to load exporter configuration : %s", err)
		return err
	}

	level := cfg.LogLevel
	if opts.logLevel != "" {
		level = opts.logLevel
	}
	if opts.quiet {
		level = "error"
	}

	// Records go to stdout, diagnostics go to stderr.
	logger, err := mglog.New(os.Stderr, level)
	if err != nil {
		log.Printf("failed to init logger: %s", err)
		return err
	}

	date, err := time.Parse(time.DateOnly, opts.date)
	if err != nil {
		err = errors.Wrap(errors.ErrInvalidDate, err)
		logger.Error(err.Error())
		return err
	}

	influxCfg := influxclient.Config{}
	if err := env.Parse(&influxCfg, env.Options{Prefix: envPrefixInflux}); err != nil {
		logger.Error(fmt.Sprintf("failed to load InfluxDB configuration : %s", err))
		return err
	}
	emailCfg := email.Config{}
	if err := env.Parse(&emailCfg, env.Options{Prefix: envPrefixEmail}); err != nil {
		logger.Error(fmt.Sprintf("failed to load e-mail configuration : %s", err))
		return err
	}
	mailerCfg := smtp.Config{}
	if err := env.Parse(&mailerCfg, env.Options{Prefix: envPrefixMailer}); err != nil {
		logger.Error(fmt.Sprintf("failed to load mailer configuration : %s", err))
		return err
	}

	if opts.settings != "" {
		settings, err := config.Load(opts.settings)
		if err != nil {
			logger.Error(err.Error())
			return err
		}
		settings.ApplyInflux(&influxCfg)
		settings.ApplyEmail(&emailCfg)
		settings.ApplyMailer(&mailerCfg)
		settings.ApplyExport(&cfg.DestDir, &cfg.FilePrefix)
	}

	exportCfg, err := loadExportConfig(opts.configFile)
	if err != nil {
		logger.Error(err.Error())
		return err
	}

	client, err := influxclient.Connect(ctx, influxCfg)
	if err != nil {
		logger.Error(err.Error())
		return err
	}
	defer client.Close()

	builder, err := samos.NewBuilder(exportCfg, influxCfg.Bucket, influxstore.NewStore(client, influxCfg.Org), logger)
	if err != nil {
		logger.Error(err.Error())
		return err
	}

	logger.Info(fmt.Sprintf("exporting data starting at: %s", date.Format(time.DateOnly)))

	stream, err := builder.Retrieve(ctx, date)
	if err != nil {
		logger.Error(err.Error())
		return err
	}
	defer stream.Close()

	if !opts.sendEmail && !opts.saveFile {
		return streamToStdout(stream, date, logger)
	}

	return deliver(stream, date, cfg, emailCfg, mailerCfg, opts, logger)
}

func loadExportConfig(path string) (samos.Config, error) {
	if path != "" {
		return samos.ReadConfig(path)
	}

	return samos.ParseConfig([]byte(defExportConfig))
}

func streamToStdout(stream *samos.RecordStream, date time.Time, logger *slog.Logger) error {
	for stream.Next() {
		fmt.Print(stream.Record())
	}
	if err := stream.Err(); err != nil {
		logger.Error(err.Error())
		return err
	}
	if stream.Count() == 0 {
		logger.Info(fmt.Sprintf("did not find any data for %s", date.Format(time.DateOnly)))
	}

	return nil
}

// deliver stages the full report in a temporary file, then fans it out to
// the selected sinks. The temporary file is removed on every path, so a
// failed run never leaves partial output behind.
func deliver(stream *samos.RecordStream, date time.Time, cfg exportConfig, emailCfg email.Config, mailerCfg smtp.Config, opts options, logger *slog.Logger) error {
	tmp, err := os.CreateTemp("", fmt.Sprintf("%s_%s_*.csv", cfg.FilePrefix, date.Format(time.DateOnly)))
	if err != nil {
		logger.Error(err.Error())
		return err
	}
	defer os.Remove(tmp.Name())
	defer tmp.Close()

	for stream.Next() {
		if _, err := tmp.WriteString(stream.Record()); err != nil {
			logger.Error(err.Error())
			return err
		}
	}
	if err := stream.Err(); err != nil {
		logger.Error(err.Error())
		return err
	}
	if stream.Count() == 0 {
		logger.Info(fmt.Sprintf("did not find any data for %s", date.Format(time.DateOnly)))
		return nil
	}
	if err := tmp.Sync(); err != nil {
		logger.Error(err.Error())
		return err
	}

	var sinks []samos.Sink
	if opts.saveFile {
		sinks = append(sinks, samos.FileSink{Dir: cfg.DestDir, Prefix: cfg.FilePrefix})
	}
	if opts.sendEmail {
		agent, err := email.New(&emailCfg)
		if err != nil {
			logger.Error(err.Error())
			return err
		}
		logger.Info(fmt.Sprintf("emailing exported data to: %v", mailerCfg.To))
		sinks = append(sinks, smtp.New(agent, mailerCfg))
	}

	var g errgroup.Group
	for _, sink := range sinks {
		sink := sink
		g.Go(func() error {
			return sink.Deliver(date, tmp.Name())
		})
	}
	if err := g.Wait(); err != nil {
		logger.Error(err.Error())
		return err
	}

	if opts.saveFile {
		logger.Info(fmt.Sprintf("saved exported data to: %s", cfg.DestDir))
	}

	return nil
}
