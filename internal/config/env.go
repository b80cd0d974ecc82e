// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const defaultDotEnvFile = ".env"

// parseEnv populates cfg from environment variables via caarlos0/env using
// the env/envPrefix tags on [StructuredConfig].
func parseEnv(cfg any) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}

// loadDotEnv loads ENV_FILE (or ./.env) into the process environment.
// Variables already set are not overridden. A missing file is not an error.
func loadDotEnv() error {
	path := os.Getenv("ENV_FILE")
	if path == "" {
		path = defaultDotEnvFile
	}

	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("error loading %s: %w", path, err)
	}

	return nil
}
