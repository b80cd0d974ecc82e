// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal dashboard built on bubbletea.
//
// It shows the broker login URL while no session exists and a table of
// accounts with their balances once the service holds a token. The model
// talks to the service only through [adapter.ServerAdapter].
package tui
