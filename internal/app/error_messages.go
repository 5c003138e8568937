// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// stub service handlers and middleware.
//
// All Msg* constants are human-readable message strings written into HTTP
// response bodies.
package app

const (
	// MsgInvalidDataProvided is returned when an operation body is not a
	// JSON object.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgUnknownCategory is returned for a category slug outside the catalog.
	MsgUnknownCategory = "unknown category"

	// MsgUnknownOperation is returned when the entry or the operation named
	// in the path does not exist.
	MsgUnknownOperation = "unknown operation"

	// MsgTooManyRequests is returned when a client exceeds the operation
	// submission rate.
	MsgTooManyRequests = "too many requests"
)
