package service

import (
	"context"

	"github.com/MKhiriev/go-crypto-catalog/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/services_mock.go -package=mock

// CatalogService serves the stub's catalog listings and answers operation
// submissions.
type CatalogService interface {
	ListEntries(ctx context.Context, category models.Category) ([]models.Entry, error)

	// Execute validates values against the schema of the operation named by
	// entrySlug and operationSlug and echoes them back. Invalid input yields
	// an error wrapping [ErrInvalidOperationInput] and a
	// [*validators.FieldError].
	Execute(ctx context.Context, category models.Category, entrySlug, operationSlug string, values models.FormValues) (models.OperationEcho, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
