// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ServerConfig is the dashboard service view of [StructuredConfig].
type ServerConfig struct {
	App     App
	Broker  Broker
	Storage Storage
	Server  Server
	Workers Workers
	Log     Log
}

// GetServerConfig loads the merged configuration and returns the validated
// service view.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := newServerConfig(cfg)
	return serverCfg, serverCfg.validate()
}

func newServerConfig(cfg *StructuredConfig) *ServerConfig {
	return &ServerConfig{
		App:     cfg.App,
		Broker:  cfg.Broker,
		Storage: cfg.Storage,
		Server:  cfg.Server,
		Workers: cfg.Workers,
		Log:     cfg.Log,
	}
}

// BrokerEndpoint returns the WebSocket URL including the app_id parameter.
func (b Broker) BrokerEndpoint() string {
	return b.WSURL + "?app_id=" + b.AppID
}

// SyncBudget returns the sync timeout, falling back to 30 seconds when unset.
func (b Broker) SyncBudget() time.Duration {
	if b.SyncTimeout <= 0 {
		return 30 * time.Second
	}
	return b.SyncTimeout
}
