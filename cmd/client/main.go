package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-cwa-home/internal/adapter"
	"github.com/MKhiriev/go-cwa-home/internal/client"
	"github.com/MKhiriev/go-cwa-home/internal/config"
	"github.com/MKhiriev/go-cwa-home/internal/logger"
	"github.com/MKhiriev/go-cwa-home/internal/service"
	"github.com/MKhiriev/go-cwa-home/internal/store"
	"github.com/MKhiriev/go-cwa-home/internal/tui"
	"github.com/MKhiriev/go-cwa-home/models"
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
		logger.NewLogger("cwa-home-client").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("cwa-home-client", cfg.App.LogPath)

	verificationAdapter, err := adapter.NewHTTPVerificationAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create verification adapter")
	}

	localStorages, err := store.NewClientStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer localStorages.Close()

	services := service.NewClientServices(localStorages, verificationAdapter, cfg.Workers, log)

	ui := tui.New(services.SubmissionService, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)

	app, err := client.NewApp(services, ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Error().Err(err).Msg("client run error")
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
