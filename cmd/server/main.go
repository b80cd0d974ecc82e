// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-trade-dash/internal/broker"
	"github.com/MKhiriev/go-trade-dash/internal/config"
	"github.com/MKhiriev/go-trade-dash/internal/handler"
	"github.com/MKhiriev/go-trade-dash/internal/logger"
	"github.com/MKhiriev/go-trade-dash/internal/metrics"
	"github.com/MKhiriev/go-trade-dash/internal/server"
	"github.com/MKhiriev/go-trade-dash/internal/service"
	"github.com/MKhiriev/go-trade-dash/internal/store"
	"github.com/MKhiriev/go-trade-dash/internal/workers"
	"github.com/MKhiriev/go-trade-dash/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(buildInfo)

	cfg, err := config.GetServerConfig()
	if err != nil {
		logger.NewLogger("trade-dash-server", "").Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.Version
	}

	log := logger.NewLogger("trade-dash-server", cfg.Log.Level)

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	collector := metrics.NewCollector(registry)

	dialer := broker.NewWebSocketDialer(cfg.Broker.BrokerEndpoint(), log)

	services, err := service.NewServices(storages, dialer, collector, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, metrics.Handler(registry), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, workers.NewWorkers(services.SyncJob), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
