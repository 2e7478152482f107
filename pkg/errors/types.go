// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package errors

var (
	// ErrInvalidDate indicates a target date that cannot be normalized to a UTC day.
	ErrInvalidDate = New("failed to normalize target date to a UTC day")

	// ErrEmptyQuerySpec indicates an empty measurement or field set in the query specification.
	ErrEmptyQuerySpec = New("empty measurement or field set in query specification")

	// ErrEmptyCallsign indicates a missing vessel callsign in the export configuration.
	ErrEmptyCallsign = New("missing vessel callsign in export configuration")

	// ErrInvalidConfig indicates a malformed export configuration document.
	ErrInvalidConfig = New("failed to parse export configuration")

	// ErrConnection indicates a transport-level failure while talking to the store.
	ErrConnection = New("failed to connect to the time-series store, verify the server URL")

	// ErrBadOrg indicates a rejected query due to organization misconfiguration.
	ErrBadOrg = New("store rejected the query, verify the organization")

	// ErrBadToken indicates a rejected query due to invalid credentials.
	ErrBadToken = New("store rejected the query, verify the token")

	// ErrBadBucket indicates a rejected query due to a missing bucket.
	ErrBadBucket = New("store rejected the query, verify the bucket")

	// ErrQuery indicates a query failure with no more specific classification.
	ErrQuery = New("failed to execute query against the time-series store")

	// ErrBadTimestamp indicates a row whose timestamp column is not valid RFC3339.
	ErrBadTimestamp = New("malformed timestamp in query result")

	// ErrDelivery indicates a failure delivering the assembled report to a sink.
	ErrDelivery = New("failed to deliver exported data")
)
