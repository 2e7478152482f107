// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package influxdb adapts the InfluxDB v2 Flux query API to the exporter's
// row source contract.
package influxdb

import (
	"context"
	stderrors "errors"
	"net/http"
	"strconv"
	"time"

	"github.com/absmach/samos-exporter/pkg/errors"
	"github.com/absmach/samos-exporter/samos"
	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	influxhttp "github.com/influxdata/influxdb-client-go/v2/api/http"
)

var _ samos.Store = (*store)(nil)

type store struct {
	queryAPI api.QueryAPI
}

// NewStore returns a samos.Store executing Flux queries against the given
// organization.
func NewStore(client influxdb2.Client, org string) samos.Store {
	return &store{
		queryAPI: client.QueryAPI(org),
	}
}

func (s *store) Query(ctx context.Context, flux string) (samos.RowSource, error) {
	result, err := s.queryAPI.Query(ctx, flux)
	if err != nil {
		return nil, classify(err)
	}

	return &rowSource{result: result}, nil
}

// classify maps store failures onto distinct diagnostics: API rejections
// point at the misconfigured credential (org, token or bucket), anything
// below the API points at the server URL.
func classify(err error) error {
	var apiErr *influxhttp.Error
	if stderrors.As(err, &apiErr) {
		switch apiErr.StatusCode {
		case http.StatusBadRequest:
			return errors.Wrap(errors.ErrBadOrg, err)
		case http.StatusUnauthorized, http.StatusForbidden:
			return errors.Wrap(errors.ErrBadToken, err)
		case http.StatusNotFound:
			return errors.Wrap(errors.ErrBadBucket, err)
		default:
			return errors.Wrap(errors.ErrQuery, err)
		}
	}

	return errors.Wrap(errors.ErrConnection, err)
}

var _ samos.RowSource = (*rowSource)(nil)

// rowSource wraps the streaming Flux table result. Rows are decoded one at
// a time as the consumer advances.
type rowSource struct {
	result *api.QueryTableResult
	row    samos.Row
}

func (r *rowSource) Next() bool {
	if !r.result.Next() {
		return false
	}

	record := r.result.Record()
	values := make(map[string]string, len(record.Values()))
	for name, value := range record.Values() {
		if skipColumn(name) || value == nil {
			continue
		}
		values[name] = renderValue(value)
	}
	r.row = samos.Row{
		Time:   record.Time().UTC().Format(time.RFC3339),
		Values: values,
	}

	return true
}

func (r *rowSource) Row() samos.Row {
	return r.row
}

func (r *rowSource) Err() error {
	if err := r.result.Err(); err != nil {
		return classify(err)
	}

	return nil
}

func (r *rowSource) Close() error {
	return r.result.Close()
}

// skipColumn filters the bookkeeping columns the Flux engine attaches to
// every pivoted record.
func skipColumn(name string) bool {
	switch name {
	case "result", "table", "_time", "_start", "_stop", "_measurement":
		return true
	}

	return false
}

// renderValue produces the textual form of a record value exactly once, at
// the store boundary. Downstream record assembly passes it through
// verbatim.
func renderValue(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case bool:
		return strconv.FormatBool(v)
	case time.Time:
		return v.UTC().Format(time.RFC3339)
	default:
		return "NaN"
	}
}
