// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/MKhiriev/go-trade-dash/models"

type sessionLoadedMsg struct {
	state    models.SessionState
	loginURL string
	accounts models.Accounts
	err      error
}

type syncDoneMsg struct {
	accounts models.Accounts
	err      error
}

type loggedOutMsg struct {
	err error
}

type copiedMsg struct {
	loginID string
	err     error
}

type clearStatusMsg struct{}
