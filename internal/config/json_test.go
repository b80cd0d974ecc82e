// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_AllSections(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app": map[string]any{
			"admin_email":    "admin@example.com",
			"token_duration": "3h",
			"public_url":     "https://dash.example.com",
		},
		"broker": map[string]any{
			"app_id":       "1089",
			"scopes":       []string{"read"},
			"sync_timeout": "12s",
		},
		"storage": map[string]any{"dsn": "redis://localhost:6379/0"},
		"server": map[string]any{
			"http_address":          "0.0.0.0:8080",
			"request_timeout":       float64(5 * time.Second),
			"login_rate_per_minute": 4,
		},
		"workers": map[string]any{"sync_interval": "90s"},
		"log":     map[string]any{"level": "trace"},
	})

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "admin@example.com", cfg.App.AdminEmail)
	assert.Equal(t, 3*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "https://dash.example.com", cfg.App.PublicURL)
	assert.Equal(t, "1089", cfg.Broker.AppID)
	assert.Equal(t, []string{"read"}, cfg.Broker.Scopes)
	assert.Equal(t, 12*time.Second, cfg.Broker.SyncTimeout)
	assert.Equal(t, "redis://localhost:6379/0", cfg.Storage.DSN)
	assert.Equal(t, "0.0.0.0:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 5*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 4, cfg.Server.LoginRatePerMinute)
	assert.Equal(t, 90*time.Second, cfg.Workers.SyncInterval)
	assert.Equal(t, "trace", cfg.Log.Level)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestParseJSON_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := parseJSON(path)
	assert.Error(t, err)
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{name: "string", input: `"1m30s"`, want: 90 * time.Second},
		{name: "nanoseconds", input: `1000000000`, want: time.Second},
		{name: "bad string", input: `"later"`, wantErr: true},
		{name: "bool", input: `true`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := json.Unmarshal([]byte(tt.input), &d)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(Duration(2 * time.Minute))
	require.NoError(t, err)
	assert.JSONEq(t, `"2m0s"`, string(b))
}
