package service

import (
	"fmt"

	"github.com/MKhiriev/go-crypto-catalog/internal/logger"
	"github.com/MKhiriev/go-crypto-catalog/internal/store"
	"github.com/MKhiriev/go-crypto-catalog/internal/validators"
	"github.com/MKhiriev/go-crypto-catalog/models"
)

type Services struct {
	CatalogService CatalogService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(buildInfo, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		CatalogService: NewCatalogService(storages.CatalogRepository, validators.NewSubmissionValidator(), logger),
		AppInfoService: appInfoService,
	}, nil
}
