// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-crypto-catalog/internal/adapter"
	"github.com/MKhiriev/go-crypto-catalog/internal/service"
)

var ErrUserQuit = errors.New("user quit")

const (
	msgServiceUnavailable = "Network is unavailable or the service is down"
	msgRequestTimeout     = "The service did not answer in time"
	msgUnknownOperation   = "The service does not provide this operation"
	msgThrottled          = "Too many submissions, try again shortly"
	msgInvalidCatalog     = "The service returned a listing that could not be read"
)

// humanizeError turns a client error into the line shown to the user.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	var svcErr *adapter.ServiceError
	switch {
	case errors.As(err, &svcErr):
		return svcErr.Message
	case errors.Is(err, service.ErrRequestTimeout):
		return msgRequestTimeout
	case errors.Is(err, service.ErrServiceUnavailable):
		return msgServiceUnavailable
	case errors.Is(err, service.ErrUnknownOperation):
		return msgUnknownOperation
	case errors.Is(err, service.ErrThrottled):
		return msgThrottled
	case errors.Is(err, adapter.ErrInvalidCatalog):
		return msgInvalidCatalog
	}

	return humanizeServerUnavailableError(err)
}

func humanizeServerUnavailableError(err error) string {
	if err == nil {
		return ""
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return msgServiceUnavailable
	}

	return err.Error()
}
