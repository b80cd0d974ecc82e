// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the terminal client runtime.
//
// It checks that the dashboard service is reachable and then hands control
// to the TUI until the user quits or the process receives a signal.
package client
