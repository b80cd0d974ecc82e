// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// UserStatus is the lifecycle state of a platform user managed from the
// admin console.
type UserStatus string

const (
	UserStatusActive    UserStatus = "active"
	UserStatusInactive  UserStatus = "inactive"
	UserStatusSuspended UserStatus = "suspended"
)

// UserAccountType tells which broker account kinds a managed user trades with.
type UserAccountType string

const (
	UserAccountReal UserAccountType = "real"
	UserAccountDemo UserAccountType = "demo"
	UserAccountBoth UserAccountType = "both"
)

// ManagedUser is one entry of the admin user registry.
type ManagedUser struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Email        string          `json:"email"`
	Status       UserStatus      `json:"status"`
	AccountType  UserAccountType `json:"account_type"`
	RegisteredAt time.Time       `json:"registered_at"`
	LastLoginAt  *time.Time      `json:"last_login_at,omitempty"`
}

// UserPage is a single page of a filtered user listing.
type UserPage struct {
	Users   []ManagedUser `json:"users"`
	Total   int           `json:"total"`
	Page    int           `json:"page"`
	PerPage int           `json:"per_page"`
	Pages   int           `json:"pages"`
}

// UserQuery selects a page of managed users. Search matches name or e-mail,
// case-insensitively. Page numbers start at 1.
type UserQuery struct {
	Search  string
	Page    int
	PerPage int
}
