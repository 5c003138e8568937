// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the Catalog & Execution Service.
//
// The primary abstraction is [ServiceAdapter], which decouples the service
// layer from the underlying protocol. The package ships an HTTP/JSON
// implementation ([NewHTTPServiceAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError and from transport failures by mapTransportError, so that
// callers can use [errors.Is] for transport-agnostic error handling (e.g.
// [ErrRequestTimeout], [ErrServiceReported]).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-crypto-catalog/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_adapter_mock.go -package=mock

// ServiceAdapter defines transport-agnostic communication with the Catalog &
// Execution Service. Implementations are responsible for serialisation,
// normalising catalog listings and mapping transport-level errors to the
// sentinel values defined in this package.
type ServiceAdapter interface {
	// ListEntries fetches the entry list of category c and normalises every
	// raw entry into [models.Entry]. Article entries carry Content and no
	// schemas. Returns [ErrInvalidCatalog] (wrapped) when the body is not a
	// list of entries.
	ListEntries(ctx context.Context, c models.Category) ([]models.Entry, error)

	// Execute POSTs req.Values to req.Path() and decodes the arbitrary JSON
	// body. A 2xx body of the form {"Error": "..."} is returned as a
	// [*ServiceError]. Execute never retries.
	Execute(ctx context.Context, req models.OperationRequest) (models.OperationResult, error)
}
