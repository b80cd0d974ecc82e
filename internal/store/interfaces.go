// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-trade-dash/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/storage_mock.go -package=mock

// Storage is a string key-value store over named keys. Get returns
// [ErrKeyNotFound] when the key is absent. Remove ignores absent keys.
// Implementations are safe for concurrent use.
type Storage interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, keys ...string) error
	Close() error
}

// SessionRepository is the typed view of the broker session keys.
// Every read re-parses storage; nothing is cached.
type SessionRepository interface {
	Token(ctx context.Context) (string, error)
	SetToken(ctx context.Context, token string) error

	Accounts(ctx context.Context) (models.Accounts, error)
	SaveAccounts(ctx context.Context, accounts models.Accounts) error

	UserInfo(ctx context.Context) (*models.UserInfo, error)
	SaveUserInfo(ctx context.Context, info models.UserInfo) error

	AdminSession(ctx context.Context) (string, error)
	SetAdminSession(ctx context.Context, token string) error

	// Clear removes the token, accounts, user info and admin flag.
	Clear(ctx context.Context) error
}

// ManagedUserRepository persists the admin console's user registry.
type ManagedUserRepository interface {
	ManagedUsers(ctx context.Context) ([]models.ManagedUser, error)
	SaveManagedUsers(ctx context.Context, users []models.ManagedUser) error
}

// ErrorClassificator decides whether a failed database call may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
