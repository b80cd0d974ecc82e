// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterSourceWins verifies that a non-zero field of a later config
// overrides the same field of an earlier one, while zero fields do not.
func TestBuild_LaterSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{Version: "1.0.0", TokenIssuer: "defaults"}},
		&StructuredConfig{App: App{TokenIssuer: "env"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, "env", cfg.App.TokenIssuer)
}

// ── sources ───────────────────────────────────────────────────────────────────

func TestWithDefaults_FillsBrokerSection(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, defaultBrokerWSURL, cfg.Broker.WSURL)
	assert.Equal(t, []string{"read", "trade", "trading_information"}, cfg.Broker.Scopes)
	assert.Equal(t, 30*time.Second, cfg.Broker.SyncTimeout)
	assert.Equal(t, 5*time.Minute, cfg.Workers.SyncInterval)
}

func TestWithFlags_InvalidFlagSetsError(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-unknown-flag"})
	assert.Error(t, b.err)
}

func TestWithJSON_MissingFileSetsError(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/definitely/not/here.json"})

	b = b.withJSON()
	assert.Error(t, b.err)
}

func TestWithJSON_NoPathIsNoop(t *testing.T) {
	b := newConfigBuilder().withDefaults().withJSON()
	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

// TestGetStructuredConfig_Precedence runs the full pipeline: defaults, env,
// flags and finally the JSON file.
func TestGetStructuredConfig_Precedence(t *testing.T) {
	jsonPath := writeTempJSONConfig(t, map[string]any{
		"log": map[string]any{"level": "error"},
	})

	t.Setenv("ENV_FILE", "/definitely/not/here.env")
	t.Setenv("BROKER_APP_ID", "1089")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("SERVER_ADDRESS", "127.0.0.1:7000")

	cfg, err := getStructuredConfig([]string{"-a", "127.0.0.1:9000", "-c", jsonPath})
	require.NoError(t, err)

	// default survives
	assert.Equal(t, "deriv", cfg.Broker.Brand)
	// env over default
	assert.Equal(t, "1089", cfg.Broker.AppID)
	// flag over env
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.HTTPAddress)
	// json over env
	assert.Equal(t, "error", cfg.Log.Level)
}
