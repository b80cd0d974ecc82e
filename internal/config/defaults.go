// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	defaultBrokerWSURL    = "wss://ws.derivws.com/websockets/v3"
	defaultBrokerOAuthURL = "https://oauth.deriv.com/oauth2/authorize"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   "go-trade-dash",
			TokenDuration: 12 * time.Hour,
			PublicURL:     "http://localhost:8080",
		},
		Broker: Broker{
			WSURL:       defaultBrokerWSURL,
			OAuthURL:    defaultBrokerOAuthURL,
			Locale:      "EN",
			Brand:       "deriv",
			Scopes:      []string{"read", "trade", "trading_information"},
			SyncTimeout: 30 * time.Second,
		},
		Storage: Storage{
			DSN: "file://trade-dash.json",
		},
		Server: Server{
			HTTPAddress:        "localhost:8080",
			RequestTimeout:     30 * time.Second,
			LoginRatePerMinute: 10,
		},
		Adapter: Adapter{
			HTTPAddress:    "http://localhost:8080",
			RequestTimeout: 40 * time.Second,
		},
		Workers: Workers{
			SyncInterval: 5 * time.Minute,
		},
		Log: Log{
			Level: "info",
		},
	}
}
