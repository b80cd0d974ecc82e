// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"

	"github.com/MKhiriev/go-trade-dash/internal/adapter"
	"github.com/MKhiriev/go-trade-dash/internal/client"
	"github.com/MKhiriev/go-trade-dash/internal/config"
	"github.com/MKhiriev/go-trade-dash/internal/logger"
	"github.com/MKhiriev/go-trade-dash/internal/tui"
	"github.com/MKhiriev/go-trade-dash/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	fmt.Println(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewClientLogger("trade-dash-client", "").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("trade-dash-client", cfg.Log.Level)

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	ui, err := tui.New(serverAdapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(serverAdapter, ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}
