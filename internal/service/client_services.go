package service

import (
	"time"

	"github.com/MKhiriev/go-crypto-catalog/internal/adapter"
	"github.com/MKhiriev/go-crypto-catalog/internal/logger"
	"github.com/MKhiriev/go-crypto-catalog/internal/utils"
)

type ClientServices struct {
	CatalogService   ClientCatalogService
	OperationService ClientOperationService
}

func NewClientServices(serviceAdapter adapter.ServiceAdapter, requestTimeout time.Duration, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		CatalogService:   NewClientCatalogService(serviceAdapter, requestTimeout, logger),
		OperationService: NewClientOperationService(serviceAdapter, utils.NewUUIDGenerator(), requestTimeout, logger),
	}
}
