// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/search-visuals/internal/adapter"
	"github.com/MKhiriev/search-visuals/internal/config"
	"github.com/MKhiriev/search-visuals/internal/events"
	"github.com/MKhiriev/search-visuals/internal/handler"
	"github.com/MKhiriev/search-visuals/internal/logger"
	"github.com/MKhiriev/search-visuals/internal/server"
	"github.com/MKhiriev/search-visuals/internal/service"
	"github.com/MKhiriev/search-visuals/internal/store"
	"github.com/MKhiriev/search-visuals/internal/workers"
	"github.com/MKhiriev/search-visuals/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("search-visuals-server")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Strs("allowed_origins", cfg.Server.AllowedOrigins).
		Str("db_driver", cfg.Storage.DB.Driver).
		Str("openverse", cfg.Adapter.OpenverseBaseURL).
		Str("pexels", cfg.Adapter.PexelsVideoURL).
		Str("credentials", cfg.App.Credentials).
		Bool("events", cfg.Events.AMQPURL != "").
		Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	providers, err := adapter.NewProviders(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating media providers")
	}

	publisher, background, closeEvents := newSearchEvents(cfg.Events, log)
	defer closeEvents()

	version := buildVersion
	if cfg.App.Version != "" {
		version = cfg.App.Version
	}
	buildInfo := models.NewAppBuildInfo(version, buildDate, buildCommit)

	services, err := service.NewServices(storages, providers, publisher, cfg.App, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, background, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

// newSearchEvents returns the publisher used by the search service, the
// worker forwarding its queue to the broker, and a cleanup func. Without a
// broker URL events are discarded.
func newSearchEvents(cfg config.Events, log *logger.Logger) (events.Publisher, *workers.Workers, func()) {
	if cfg.AMQPURL == "" {
		log.Info().Msg("search events disabled")
		return events.NopPublisher{}, workers.NewWorkers(), func() {}
	}

	broker, err := events.NewAMQPBroker(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to search events broker")
	}

	queue := events.NewQueuePublisher(cfg.BufferSize)
	worker := workers.NewSearchEventWorker(queue.Events(), broker, log)

	return queue, workers.NewWorkers(worker), func() {
		queue.Close()
		if err := broker.Close(); err != nil {
			log.Err(err).Msg("error closing search events broker")
		}
	}
}

func printBuildInfo() {
	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	fmt.Printf("Build version: %s\n", info.Version)
	fmt.Printf("Build date: %s\n", info.Date)
	fmt.Printf("Build commit: %s\n", info.Commit)
}
