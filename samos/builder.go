// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package samos

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Store executes a Flux query and exposes the resulting rows as a cursor.
// Implementations classify transport and API failures before returning
// them.
type Store interface {
	Query(ctx context.Context, flux string) (RowSource, error)
}

// Builder builds SAMOS records for one export configuration. Each run
// binds a fresh stream to one target day; the builder itself carries no
// per-run state.
type Builder struct {
	cfg    Config
	bucket string
	store  Store
	logger *slog.Logger
}

// NewBuilder validates the export configuration and returns a builder
// bound to it. Unknown field codes are downgraded to warnings by
// validation; empty callsign, measurement or field sets are fatal.
func NewBuilder(cfg Config, bucket string, store Store, logger *slog.Logger) (*Builder, error) {
	if err := cfg.Validate(logger); err != nil {
		return nil, err
	}

	return &Builder{
		cfg:    cfg,
		bucket: bucket,
		store:  store,
		logger: logger,
	}, nil
}

// Retrieve executes the export query for the day containing ts and
// returns a lazy stream of SAMOS records. The caller owns the stream and
// must close it.
func (b *Builder) Retrieve(ctx context.Context, ts time.Time) (*RecordStream, error) {
	query, err := BuildQuery(b.bucket, ts, b.cfg.Measurements, b.cfg.SourceFields())
	if err != nil {
		return nil, err
	}
	b.logger.Debug(fmt.Sprintf("query:\n%s", query))

	b.logger.Info("retrieving SAMOS data")
	rows, err := b.store.Query(ctx, query)
	if err != nil {
		return nil, err
	}

	return newRecordStream(b.cfg, rows, b.logger), nil
}
