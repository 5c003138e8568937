package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-crypto-catalog/internal/adapter"
	"github.com/MKhiriev/go-crypto-catalog/internal/client"
	"github.com/MKhiriev/go-crypto-catalog/internal/config"
	"github.com/MKhiriev/go-crypto-catalog/internal/logger"
	"github.com/MKhiriev/go-crypto-catalog/internal/service"
	"github.com/MKhiriev/go-crypto-catalog/internal/tui"
	"github.com/MKhiriev/go-crypto-catalog/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewLogger("crypto-catalog-client", "").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("crypto-catalog-client", cfg.Log.File, cfg.Log.Level)
	log.Debug().Any("config", cfg).Msg("received configs")

	serviceAdapter := adapter.NewHTTPServiceAdapter(cfg.Adapter, log)
	services := service.NewClientServices(serviceAdapter, cfg.Adapter.RequestTimeout, log)

	ui, err := tui.New(services, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("client run error")
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
