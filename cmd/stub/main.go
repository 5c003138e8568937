package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-crypto-catalog/internal/config"
	"github.com/MKhiriev/go-crypto-catalog/internal/handler"
	"github.com/MKhiriev/go-crypto-catalog/internal/logger"
	"github.com/MKhiriev/go-crypto-catalog/internal/server"
	"github.com/MKhiriev/go-crypto-catalog/internal/service"
	"github.com/MKhiriev/go-crypto-catalog/internal/store"
	"github.com/MKhiriev/go-crypto-catalog/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetStubConfig()
	if err != nil {
		logger.NewLogger("crypto-catalog-stub", "").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("crypto-catalog-stub", cfg.LogLevel)
	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := log.WithContext(context.Background())

	storages, err := store.NewStorages(ctx, cfg.DSN, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	services, err := service.NewServices(storages, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(ctx); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
