// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the dashboard REST API.
//
// It exposes route wiring, request handlers and middleware. Request tracing,
// access logging, admin authentication and login rate limiting are handled in
// this package before requests are delegated to the service layer.
package http
