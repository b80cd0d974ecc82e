// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container. It is populated
// by merging defaults, environment variables, flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to nested env lookups (caarlos0/env).
//   - env: environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds admin credentials, token parameters and the version string.
	App App `envPrefix:"APP_"`

	// Broker holds the broker WebSocket endpoint and OAuth parameters.
	Broker Broker `envPrefix:"BROKER_"`

	// Storage selects the session storage backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the HTTP listener settings of the dashboard service.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the settings the terminal client uses to reach the service.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds background job settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// Log holds logger settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional JSON config file, set via CONFIG or -c/-config.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// AdminEmail is the e-mail accepted by the admin login.
	// Env: APP_ADMIN_EMAIL
	AdminEmail string `env:"ADMIN_EMAIL"`

	// AdminPasswordHash is the bcrypt hash of the admin password.
	// Env: APP_ADMIN_PASSWORD_HASH
	AdminPasswordHash string `env:"ADMIN_PASSWORD_HASH"`

	// TokenSignKey signs admin JWTs with HMAC-SHA256.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim of admin JWTs.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is the admin JWT lifetime.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// PublicURL is the externally reachable base URL of the service; the OAuth
	// redirect URI is derived from it.
	// Env: APP_PUBLIC_URL
	PublicURL string `env:"PUBLIC_URL"`

	// Version is exposed via /api/version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Broker holds the broker integration settings.
type Broker struct {
	// WSURL is the broker WebSocket endpoint without the app_id parameter.
	// Env: BROKER_WS_URL
	WSURL string `env:"WS_URL"`

	// OAuthURL is the broker OAuth authorize endpoint.
	// Env: BROKER_OAUTH_URL
	OAuthURL string `env:"OAUTH_URL"`

	// AppID is the application identifier registered with the broker.
	// Env: BROKER_APP_ID
	AppID string `env:"APP_ID"`

	// Locale is sent as the "l" OAuth parameter.
	// Env: BROKER_LOCALE
	Locale string `env:"LOCALE"`

	// Brand is sent as the "brand" OAuth parameter.
	// Env: BROKER_BRAND
	Brand string `env:"BRAND"`

	// Scopes are requested during OAuth, joined with spaces.
	// Env: BROKER_SCOPES (comma separated)
	Scopes []string `env:"SCOPES" envSeparator:","`

	// SyncTimeout bounds a single account sync run.
	// Env: BROKER_SYNC_TIMEOUT
	SyncTimeout time.Duration `env:"SYNC_TIMEOUT"`
}

// Storage selects the session storage backend by DSN.
type Storage struct {
	// DSN is one of: "memory", "file://path", "sqlite://path", "postgres://…",
	// "redis://…". Paths ending in .json or .db are accepted without scheme.
	// Env: STORAGE_DSN
	DSN string `env:"DSN"`
}

// Server holds the dashboard HTTP listener settings.
type Server struct {
	// HTTPAddress is the listen address in host:port form.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// LoginRatePerMinute limits admin login attempts per client IP.
	// Env: SERVER_LOGIN_RATE_PER_MINUTE
	LoginRatePerMinute int `env:"LOGIN_RATE_PER_MINUTE"`
}

// Adapter holds the terminal client's view of the service.
type Adapter struct {
	// HTTPAddress is the service base URL or host:port.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds outbound requests.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds background job settings.
type Workers struct {
	// SyncInterval is how often balances are refreshed while a session exists.
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`
}

// Log holds logger settings.
type Log struct {
	// Level is a zerolog level name.
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

// GetStructuredConfig loads and merges the configuration from all sources
// using the process arguments for flags.
func GetStructuredConfig() (*StructuredConfig, error) {
	return getStructuredConfig(os.Args[1:])
}

func getStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withDotEnv().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
