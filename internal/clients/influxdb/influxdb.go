// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package influxdb

import (
	"context"
	"time"

	"github.com/absmach/samos-exporter/pkg/errors"
	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
)

var errConnect = errors.New("failed to connect to InfluxDB server")

type Config struct {
	URL     string        `env:"URL"     envDefault:"http://localhost:8086"`
	Org     string        `env:"ORG"     envDefault:""`
	Bucket  string        `env:"BUCKET"  envDefault:""`
	Token   string        `env:"TOKEN"   envDefault:""`
	Timeout time.Duration `env:"TIMEOUT" envDefault:"5s"`
}

// Connect creates an InfluxDB client and verifies the server is reachable.
func Connect(ctx context.Context, config Config) (influxdb2.Client, error) {
	opts := influxdb2.DefaultOptions().SetHTTPRequestTimeout(uint(config.Timeout / time.Second))
	client := influxdb2.NewClientWithOptions(config.URL, config.Token, opts)

	ctx, cancel := context.WithTimeout(ctx, config.Timeout)
	defer cancel()
	if _, err := client.Ready(ctx); err != nil {
		return nil, errors.Wrap(errConnect, err)
	}

	return client, nil
}
