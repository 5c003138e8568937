package tui

import (
	"github.com/MKhiriev/go-crypto-catalog/internal/session"
	"github.com/MKhiriev/go-crypto-catalog/models"
)

// catalogLoadedMsg reports the outcome of a category fetch. Listings are
// keyed by category, so a late message is never stale.
type catalogLoadedMsg struct {
	category models.Category
	state    models.CatalogState
	err      error
}

// operationDoneMsg reports the outcome of one submission.
type operationDoneMsg struct {
	ticket session.Ticket
	result models.OperationResult
	err    error
}

type copiedMsg struct{}

type clearStatusMsg struct{}
