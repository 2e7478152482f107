// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package samos builds SAMOS interchange records from time-series
// observations: it constructs the day-bounded, pivoted store query and
// lazily assembles one tagged, comma-delimited record per returned row.
package samos
