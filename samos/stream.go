// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package samos

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/absmach/samos-exporter/pkg/errors"
)

// Row is one pivoted observation: an RFC3339 timestamp and the textual
// value of each field present at that instant.
type Row struct {
	Time   string
	Values map[string]string
}

// Value looks up the value of the named source field, reporting whether
// the row carries it.
func (r Row) Value(name string) (string, bool) {
	v, ok := r.Values[name]
	return v, ok
}

// RowSource is a cursor over the rows returned by the store for one query.
// It is finite and non-restartable.
type RowSource interface {
	// Next advances to the next row, returning false when the source is
	// exhausted or failed.
	Next() bool

	// Row returns the current row. Valid only after a true Next.
	Row() Row

	// Err returns the error that stopped iteration, if any.
	Err() error

	// Close releases the underlying cursor. Safe to call at any point.
	Close() error
}

// RecordStream lazily turns store rows into SAMOS records, one per pull.
// Rows are consumed from the source as the consumer advances; the result
// set is never materialized.
type RecordStream struct {
	callsign string
	fields   FieldMappings
	rows     RowSource
	logger   *slog.Logger

	seq     int
	count   int
	record  string
	err     error
	closed  bool
	missing map[string]struct{}
}

func newRecordStream(cfg Config, rows RowSource, logger *slog.Logger) *RecordStream {
	return &RecordStream{
		callsign: cfg.Callsign,
		fields:   cfg.Fields,
		rows:     rows,
		logger:   logger,
		missing:  map[string]struct{}{},
	}
}

// Next advances the stream to the next record. It returns false when the
// result set is exhausted or a fatal error occurred; consult Err to tell
// the two apart.
func (s *RecordStream) Next() bool {
	if s.err != nil || s.closed {
		return false
	}

	if !s.rows.Next() {
		if err := s.rows.Err(); err != nil {
			s.err = err
		}
		return false
	}

	record, err := s.assemble(s.rows.Row())
	if err != nil {
		s.err = err
		s.Close()
		return false
	}

	s.record = record
	s.seq++
	s.count++

	return true
}

// Record returns the current record line, newline-terminated. Valid only
// after a true Next.
func (s *RecordStream) Record() string {
	return s.record
}

// Err returns the error that terminated the stream, if any. Exhaustion is
// not an error.
func (s *RecordStream) Err() error {
	return s.err
}

// Count returns the number of records emitted so far. A zero count after
// exhaustion means the store holds no data for the day.
func (s *RecordStream) Count() int {
	return s.count
}

// Close releases the underlying row cursor. The stream yields no further
// records after Close.
func (s *RecordStream) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	return s.rows.Close()
}

// assemble renders one row as an ordered, comma-delimited record:
// $SAMOS:<seq>,CS:<callsign>,YMD:<YYYYMMDD>,HMS:<HHMMSS> followed by one
// <code>:<value> token per configured mapping. Values pass through
// verbatim; a missing field yields NaN and one warning per field per run.
func (s *RecordStream) assemble(row Row) (string, error) {
	if _, err := time.Parse(time.RFC3339, row.Time); err != nil {
		return "", errors.Wrap(errors.ErrBadTimestamp, err)
	}

	tokens := make([]string, 0, len(s.fields)+4)
	tokens = append(tokens,
		fmt.Sprintf("$SAMOS:%03d", s.seq),
		"CS:"+s.callsign,
		"YMD:"+strings.ReplaceAll(row.Time[:10], "-", ""),
		"HMS:"+strings.ReplaceAll(row.Time[11:19], ":", ""),
	)

	for _, m := range s.fields {
		val, ok := row.Value(m.Source)
		if !ok {
			if _, seen := s.missing[m.Source]; !seen {
				s.missing[m.Source] = struct{}{}
				s.logger.Warn(fmt.Sprintf("field %s is not present in the query result", m.Source))
			}
			val = "NaN"
		}
		tokens = append(tokens, m.Code+":"+val)
	}

	return strings.Join(tokens, ",") + "\n", nil
}
