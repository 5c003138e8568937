package service

import (
	"context"

	"github.com/MKhiriev/go-crypto-catalog/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_services_mock.go -package=mock

// ClientCatalogService owns the per-category entry listings for the session.
// Listings are fetched lazily, at most once concurrently per category, and
// never invalidated once loaded. Safe for concurrent use.
type ClientCatalogService interface {
	// State reports the cached state of category c without side effects.
	State(c models.Category) models.CatalogState

	// BeginLoad marks c as Loading when it is NotLoaded or Failed and reports
	// whether the caller should issue EnsureLoaded. It returns false while a
	// load is already in flight or after the listing has been loaded.
	BeginLoad(c models.Category) bool

	// EnsureLoaded fetches the listing of c unless it is already loaded.
	// Concurrent callers share one fetch. A failure is logged and recorded
	// as a Failed state; the returned error is the fetch error.
	EnsureLoaded(ctx context.Context, c models.Category) (models.CatalogState, error)
}

// ClientOperationService submits operation forms to the execution service.
// Safe for concurrent use.
type ClientOperationService interface {
	// NewRequest assembles a submission with a fresh request id. Values are
	// restricted to the declared fields, missing ones set to "".
	NewRequest(c models.Category, entry models.Entry, op models.Operation, values models.FormValues) models.OperationRequest

	// Submit executes req under the configured timeout. It returns
	// [ErrSubmissionInFlight] while another submission for the same
	// (entry, operation) pair is pending. Submit never retries.
	Submit(ctx context.Context, req models.OperationRequest) (models.OperationResult, error)

	// InFlight reports whether a submission with the given key is pending.
	InFlight(key string) bool
}
