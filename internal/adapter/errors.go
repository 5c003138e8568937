package adapter

import (
	"errors"
	"fmt"
)

// Status errors returned by mapHTTPError.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
)

// Transport and payload errors.
var (
	// ErrServiceUnavailable means the service could not be reached at all.
	ErrServiceUnavailable = errors.New("service unavailable")
	// ErrRequestTimeout means the request deadline expired before a response.
	ErrRequestTimeout = errors.New("request timed out")
	// ErrServiceReported matches every [*ServiceError].
	ErrServiceReported = errors.New("service reported an error")
	// ErrInvalidCatalog means a listing body could not be normalised.
	ErrInvalidCatalog = errors.New("invalid catalog listing")
)

// ServiceError carries the message of an {"Error": "..."} envelope.
type ServiceError struct {
	Message string
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s: %s", ErrServiceReported, e.Message)
}

// Is makes errors.Is(err, ErrServiceReported) hold for any *ServiceError.
func (e *ServiceError) Is(target error) bool {
	return target == ErrServiceReported
}
