// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package samos

import (
	"fmt"
	"strings"
	"time"

	"github.com/absmach/samos-exporter/pkg/errors"
)

// Flux range boundaries are rendered with millisecond precision, matching
// the store's RFC3339 dialect.
const rangeTimeLayout = "2006-01-02T15:04:05.000Z"

// BuildRange normalizes ts to the whole UTC day containing it: start is
// the date at 00:00:00.000 UTC and end is exactly 24 hours later.
func BuildRange(ts time.Time) (time.Time, time.Time, error) {
	if ts.IsZero() {
		return time.Time{}, time.Time{}, errors.ErrInvalidDate
	}

	ts = ts.UTC()
	start := time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, time.UTC)

	return start, start.Add(24 * time.Hour), nil
}

// BuildQuery constructs the Flux query for one export day: a range-filtered
// read over the configured measurements and fields, projected down to
// time/field/value and pivoted so each timestamp becomes one row with one
// column per field.
func BuildQuery(bucket string, ts time.Time, measurements, fields []string) (string, error) {
	if len(measurements) == 0 || len(fields) == 0 {
		return "", errors.ErrEmptyQuerySpec
	}

	start, stop, err := BuildRange(ts)
	if err != nil {
		return "", err
	}

	measurementFilters := make([]string, 0, len(measurements))
	for _, m := range measurements {
		measurementFilters = append(measurementFilters, fmt.Sprintf("r[\"_measurement\"] == %q", m))
	}
	fieldFilters := make([]string, 0, len(fields))
	for _, f := range fields {
		fieldFilters = append(fieldFilters, fmt.Sprintf("r[\"_field\"] == %q", f))
	}

	var query strings.Builder
	fmt.Fprintf(&query, "from(bucket: %q)\n", bucket)
	fmt.Fprintf(&query, "|> range(start: %s, stop: %s)\n", start.Format(rangeTimeLayout), stop.Format(rangeTimeLayout))
	fmt.Fprintf(&query, "|> filter(fn: (r) => %s)\n", strings.Join(measurementFilters, " or "))
	fmt.Fprintf(&query, "|> filter(fn: (r) => %s)\n", strings.Join(fieldFilters, " or "))
	query.WriteString(`|> keep(columns: ["_time", "_field", "_value"])`)
	query.WriteString(`|> pivot(rowKey:["_time"], columnKey: ["_field"], valueColumn: "_value")`)

	return query.String(), nil
}
