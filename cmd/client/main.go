package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/go-inbox-pilot/internal/adapter"
	"github.com/MKhiriev/go-inbox-pilot/internal/client"
	"github.com/MKhiriev/go-inbox-pilot/internal/config"
	"github.com/MKhiriev/go-inbox-pilot/internal/logger"
	"github.com/MKhiriev/go-inbox-pilot/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("inbox-pilot-client")

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if cfg.Adapter.BaseURL == "" {
		cfg.Adapter.BaseURL = "http://localhost:8000"
	}
	if cfg.Adapter.RequestTimeout <= 0 {
		cfg.Adapter.RequestTimeout = 15 * time.Second
	}
	if err = cfg.Adapter.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid adapter configs")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	creds := client.Credentials{
		Email:    os.Getenv("CLIENT_EMAIL"),
		Password: os.Getenv("CLIENT_PASSWORD"),
		Name:     os.Getenv("CLIENT_NAME"),
	}

	app, err := client.NewApp(serverAdapter, creds, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	if err = app.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}

	log.Info().Msg("smoke run finished")
}

func printBuildInfo() {
	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	fmt.Printf("Build version: %s\n", info.BuildVersion)
	fmt.Printf("Build date: %s\n", info.BuildDate)
	fmt.Printf("Build commit: %s\n", info.BuildCommit)
}
