// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/qr-facil/internal/config"
	"github.com/MKhiriev/qr-facil/internal/handler"
	"github.com/MKhiriev/qr-facil/internal/logger"
	"github.com/MKhiriev/qr-facil/internal/server"
	"github.com/MKhiriev/qr-facil/internal/service"
	"github.com/MKhiriev/qr-facil/internal/store"
	"github.com/MKhiriev/qr-facil/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("qr-facil-server")
	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	logger.SetLevel(cfg.LogLevel)

	if cfg.Version == "" {
		cfg.Version = buildVersion
	}
	if cfg.Version == "" {
		cfg.Version = models.BuildInfoNotAvailable
	}

	log.Debug().Str("http_address", cfg.HTTPAddress).Dur("request_timeout", cfg.RequestTimeout).Msg("received configs")

	storages, err := store.NewServerStorages(context.Background(), cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	services, err := service.NewServices(storages, cfg.Version, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, storages, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	for _, line := range models.NewAppBuildInfo(buildVersion, buildDate, buildCommit).Lines() {
		fmt.Println(line)
	}
}
