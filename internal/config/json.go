// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the on-disk JSON layout.
type StructuredJSONConfig struct {
	App struct {
		AdminEmail        string   `json:"admin_email"`
		AdminPasswordHash string   `json:"admin_password_hash"`
		TokenSignKey      string   `json:"token_sign_key"`
		TokenIssuer       string   `json:"token_issuer"`
		TokenDuration     Duration `json:"token_duration"`
		PublicURL         string   `json:"public_url"`
		Version           string   `json:"version"`
	} `json:"app,omitempty"`

	Broker struct {
		WSURL       string   `json:"ws_url"`
		OAuthURL    string   `json:"oauth_url"`
		AppID       string   `json:"app_id"`
		Locale      string   `json:"locale"`
		Brand       string   `json:"brand"`
		Scopes      []string `json:"scopes"`
		SyncTimeout Duration `json:"sync_timeout"`
	} `json:"broker,omitempty"`

	Storage struct {
		DSN string `json:"dsn"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress        string   `json:"http_address"`
		RequestTimeout     Duration `json:"request_timeout"`
		LoginRatePerMinute int      `json:"login_rate_per_minute"`
	} `json:"server,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Workers struct {
		SyncInterval Duration `json:"sync_interval"`
	} `json:"workers,omitempty"`

	Log struct {
		Level string `json:"level"`
	} `json:"log,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			AdminEmail:        jsonCfg.App.AdminEmail,
			AdminPasswordHash: jsonCfg.App.AdminPasswordHash,
			TokenSignKey:      jsonCfg.App.TokenSignKey,
			TokenIssuer:       jsonCfg.App.TokenIssuer,
			TokenDuration:     time.Duration(jsonCfg.App.TokenDuration),
			PublicURL:         jsonCfg.App.PublicURL,
			Version:           jsonCfg.App.Version,
		},
		Broker: Broker{
			WSURL:       jsonCfg.Broker.WSURL,
			OAuthURL:    jsonCfg.Broker.OAuthURL,
			AppID:       jsonCfg.Broker.AppID,
			Locale:      jsonCfg.Broker.Locale,
			Brand:       jsonCfg.Broker.Brand,
			Scopes:      jsonCfg.Broker.Scopes,
			SyncTimeout: time.Duration(jsonCfg.Broker.SyncTimeout),
		},
		Storage: Storage{
			DSN: jsonCfg.Storage.DSN,
		},
		Server: Server{
			HTTPAddress:        jsonCfg.Server.HTTPAddress,
			RequestTimeout:     time.Duration(jsonCfg.Server.RequestTimeout),
			LoginRatePerMinute: jsonCfg.Server.LoginRatePerMinute,
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Workers: Workers{
			SyncInterval: time.Duration(jsonCfg.Workers.SyncInterval),
		},
		Log: Log{
			Level: jsonCfg.Log.Level,
		},
	}

	return cfg, nil
}

// Duration wraps time.Duration so JSON can carry either "30s"-style strings
// or raw nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
