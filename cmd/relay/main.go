package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/monnify-relay/internal/adapter"
	"github.com/MKhiriev/monnify-relay/internal/config"
	myHTTP "github.com/MKhiriev/monnify-relay/internal/handler/http"
	"github.com/MKhiriev/monnify-relay/internal/logger"
	"github.com/MKhiriev/monnify-relay/internal/server"
	"github.com/MKhiriev/monnify-relay/internal/service"
	"github.com/MKhiriev/monnify-relay/internal/workers"
	"github.com/MKhiriev/monnify-relay/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

// @title        Monnify Relay API
// @version      1.0.0
// @description  Relay exposing Monnify authentication and NIN lookup endpoints.
// @BasePath     /
func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		bootLog := logger.NewLogger(config.DefaultAppName, config.Log{})
		bootLog.Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger(cfg.App.Name, cfg.Log)
	defer log.Close()

	log.Debug().
		Str("environment", cfg.App.Environment).
		Str("address", cfg.Server.Address()).
		Str("base_url", cfg.Server.BaseURL).
		Str("provider_url", cfg.Provider.BaseURL).
		Str("demo_url", cfg.Demo.URL).
		Msg("received configs")

	providerClient, err := adapter.NewAPIClient(cfg.Provider.BaseURL, log,
		adapter.WithRequestTimeout(cfg.Provider.RequestTimeout),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating provider client")
	}

	demoClient, err := adapter.NewAPIClient(cfg.Demo.URL, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating demo client")
	}

	services := service.NewServices(service.Clients{
		Provider: providerClient,
		Demo:     demoClient,
	}, cfg.Provider, buildInfo, log)

	myHTTP.ConfigureSwagger(cfg.Server.BaseURL)
	handler := myHTTP.NewHandler(services, cfg.Server, log)

	var keepAlive workers.Worker
	if cfg.Server.KeepAliveInterval > 0 {
		selfClient, err := adapter.NewAPIClient(cfg.Server.BaseURL, log)
		if err != nil {
			log.Fatal().Err(err).Msg("error creating keep-alive client")
		}
		keepAlive = workers.NewKeepAlive(selfClient, cfg.Server.KeepAliveInterval, log)
	}

	srv, err := server.NewServer(handler.Init(), workers.NewWorkers(keepAlive), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(context.Background()); err != nil {
		log.Error().Err(err).Msg("server run error")
		log.Close()
		os.Exit(1)
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
