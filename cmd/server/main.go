package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-inbox-pilot/internal/config"
	"github.com/MKhiriev/go-inbox-pilot/internal/handler"
	"github.com/MKhiriev/go-inbox-pilot/internal/logger"
	"github.com/MKhiriev/go-inbox-pilot/internal/server"
	"github.com/MKhiriev/go-inbox-pilot/internal/service"
	"github.com/MKhiriev/go-inbox-pilot/internal/store"
	"github.com/MKhiriev/go-inbox-pilot/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("inbox-pilot-server")

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	// The sign key itself must never reach the logs.
	if cfg.App.TokenSignKey == config.DefaultTokenSignKey {
		log.Warn().Msg("TOKEN_SIGN_KEY is not set, tokens are signed with the built-in development key")
	}

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.DB.Close()

	services, err := service.NewServices(storages, cfg, log)
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

	srv.RunServer()
}

func printBuildInfo() {
	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	fmt.Printf("Build version: %s\n", info.BuildVersion)
	fmt.Printf("Build date: %s\n", info.BuildDate)
	fmt.Printf("Build commit: %s\n", info.BuildCommit)
}
