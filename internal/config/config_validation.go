// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

func (cfg *ServerConfig) validate() error {
	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Broker.WSURL == "" || cfg.Broker.AppID == "" || cfg.Broker.OAuthURL == "" {
		return ErrInvalidBrokerConfigs
	}

	if strings.TrimSpace(cfg.Storage.DSN) == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Workers.SyncInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	// admin login stays disabled until an e-mail is configured
	if cfg.App.AdminEmail != "" {
		if cfg.App.AdminPasswordHash == "" || cfg.App.TokenSignKey == "" || cfg.App.TokenDuration <= 0 {
			return ErrInvalidAppConfigs
		}
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
