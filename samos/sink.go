// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package samos

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/absmach/samos-exporter/pkg/errors"
)

// Sink delivers one assembled daily report. The report is staged in a
// temporary file by the run orchestrator; sinks never see partial output.
type Sink interface {
	Deliver(date time.Time, path string) error
}

var _ Sink = (*FileSink)(nil)

// FileSink copies the report into a destination directory under a
// date-stamped name.
type FileSink struct {
	Dir    string
	Prefix string
}

func (s FileSink) Deliver(date time.Time, path string) error {
	src, err := os.Open(path)
	if err != nil {
		return errors.Wrap(errors.ErrDelivery, err)
	}
	defer src.Close()

	dest := filepath.Join(s.Dir, fmt.Sprintf("%s_%s.csv", s.Prefix, date.Format(time.DateOnly)))
	dst, err := os.Create(dest)
	if err != nil {
		return errors.Wrap(errors.ErrDelivery, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return errors.Wrap(errors.ErrDelivery, err)
	}

	return nil
}
