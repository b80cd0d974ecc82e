// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the dashboard HTTP server together with the background
// workers, including signal handling and graceful shutdown.
package server
