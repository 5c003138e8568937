// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-crypto-catalog/internal/adapter"
)

// mapAdapterError translates the adapter's transport error into a service
// error. The adapter error stays in the chain so that callers can still
// reach an [*adapter.ServiceError] with errors.As.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, adapter.ErrRequestTimeout):
		return fmt.Errorf("%w: %w", ErrRequestTimeout, err)

	case errors.Is(err, adapter.ErrServiceUnavailable),
		errors.Is(err, adapter.ErrBadGateway):
		return fmt.Errorf("%w: %w", ErrServiceUnavailable, err)

	case errors.Is(err, adapter.ErrServiceReported),
		errors.Is(err, adapter.ErrBadRequest):
		return fmt.Errorf("%w: %w", ErrOperationRejected, err)

	case errors.Is(err, adapter.ErrNotFound):
		return fmt.Errorf("%w: %w", ErrUnknownOperation, err)

	case errors.Is(err, adapter.ErrTooManyRequests):
		return fmt.Errorf("%w: %w", ErrThrottled, err)
	}

	return err
}
