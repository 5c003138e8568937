package service

import "errors"

var (
	// ErrSubmissionInFlight is returned when an (entry, operation) pair
	// already has a pending submission.
	ErrSubmissionInFlight = errors.New("submission already in flight")

	// ErrRequestTimeout means the service did not answer within the
	// configured request timeout.
	ErrRequestTimeout = errors.New("request timed out")

	// ErrServiceUnavailable means the service could not be reached.
	ErrServiceUnavailable = errors.New("service unavailable")

	// ErrOperationRejected means the service refused the submitted input,
	// either with an error envelope or a 400 status.
	ErrOperationRejected = errors.New("operation rejected by service")

	// ErrUnknownOperation means the service has no endpoint for the
	// (category, entry, operation) triple.
	ErrUnknownOperation = errors.New("unknown operation")

	// ErrThrottled means the service asked the client to slow down.
	ErrThrottled = errors.New("too many submissions")

	// ErrUnknownCategory is returned for categories outside the catalog.
	ErrUnknownCategory = errors.New("unknown category")
)

// Stub service errors.
var (
	// ErrInvalidOperationInput wraps a validation failure of a submission.
	ErrInvalidOperationInput = errors.New("invalid operation input")

	// ErrVersionIsNotSpecified is returned when the stub is built without a
	// version string.
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
