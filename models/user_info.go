// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// UserInfo is the broker-reported identity attached to an authorized session.
// It is written once per login and read-only afterwards.
type UserInfo struct {
	LoginID            string   `json:"loginid"`
	Email              string   `json:"email"`
	FullName           string   `json:"fullname"`
	Country            string   `json:"country"`
	Currency           string   `json:"currency"`
	LandingCompanyName string   `json:"landing_company_name"`
	PreferredLanguage  string   `json:"preferred_language,omitempty"`
	Scopes             []string `json:"scopes,omitempty"`
	UserID             int64    `json:"user_id"`
	IsVirtual          int      `json:"is_virtual"`
}

// SessionState is what the guard exposes about the current session.
type SessionState struct {
	// Authenticated is true when a broker session token is stored.
	Authenticated bool `json:"authenticated"`

	// Admin is true when an admin session flag is stored.
	Admin bool `json:"admin"`

	// UserInfo is nil until the first successful authorize response.
	UserInfo *UserInfo `json:"user_info,omitempty"`
}
