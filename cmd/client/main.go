package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-profile-hub/internal/adapter"
	"github.com/MKhiriev/go-profile-hub/internal/client"
	"github.com/MKhiriev/go-profile-hub/internal/config"
	"github.com/MKhiriev/go-profile-hub/internal/logger"
	"github.com/MKhiriev/go-profile-hub/internal/service"
	"github.com/MKhiriev/go-profile-hub/internal/store"
	"github.com/MKhiriev/go-profile-hub/internal/tui"
	"github.com/MKhiriev/go-profile-hub/internal/workers"
	"github.com/MKhiriev/go-profile-hub/models"
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
		fmt.Printf("error getting configs: %v\n", err)
		return
	}
	log := logger.NewClientLogger("profile-hub-client", cfg.LogFile)

	localStorage, err := store.NewClientStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	serverAdapter := adapter.NewWSServerAdapter(cfg.Adapter, log)

	infoAdapter, err := adapter.NewHTTPInfoAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create info adapter")
	}

	services := service.NewClientServices(localStorage, serverAdapter, cfg.Calls, log)
	jobs := workers.New(workers.Every(services.Heartbeat, cfg.Workers.HeartbeatInterval))

	ui := tui.New(services, infoAdapter, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)

	var app client.Client
	app, err = client.NewApp(serverAdapter, localStorage, ui, jobs, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
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
