// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// ClientConfig is the terminal client view of [StructuredConfig].
type ClientConfig struct {
	// Adapter contains the service address and request timeout.
	Adapter Adapter
	// Log contains logger settings for the client log file.
	Log Log
}

// GetClientConfig loads the merged configuration and returns the validated
// client view.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		Adapter: cfg.Adapter,
		Log:     cfg.Log,
	}
}
