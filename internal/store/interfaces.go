package store

import (
	"context"

	"github.com/MKhiriev/go-crypto-catalog/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// CatalogRepository reads the catalog served by the stub service.
type CatalogRepository interface {
	// ListEntries returns every entry of category in display order, each
	// with its operation schemas.
	ListEntries(ctx context.Context, category models.Category) ([]models.Entry, error)

	// FindEntry returns the entry of category whose title slug is slug.
	// It returns [ErrEntryNotFound] when there is none.
	FindEntry(ctx context.Context, category models.Category, slug string) (models.Entry, error)
}
