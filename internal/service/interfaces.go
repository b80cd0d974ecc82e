// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-trade-dash/models"
)

// AccountSyncService drives the broker protocol that fills the stored account
// collection and user info.
type AccountSyncService interface {
	// Sync opens one broker connection, authorizes with token and stores the
	// account list and every balance the broker reports. Runs are serialized.
	Sync(ctx context.Context, token string) error

	// SyncStored runs Sync with the token currently held in storage. The token
	// is read after the previous run finished. ErrNoSessionToken is returned
	// when there is none.
	SyncStored(ctx context.Context) error

	// StartSession stores token and syncs with it without letting another run
	// in between. A storage failure is wrapped with ErrSessionNotStored; any
	// other error comes from the sync and leaves the token stored.
	StartSession(ctx context.Context, token string) error

	// EndSession waits for a running sync to finish and then clears the
	// session keys.
	EndSession(ctx context.Context) error

	// Accounts returns the stored account collection.
	Accounts(ctx context.Context) (models.Accounts, error)
}

// SessionGuard answers presence questions about the stored session. It never
// validates tokens and never talks to the network.
type SessionGuard interface {
	IsAuthenticated(ctx context.Context) (bool, error)
	IsAdmin(ctx context.Context) (bool, error)
}

type AuthService interface {
	LoginURL() string
	HandleCallback(ctx context.Context, token string) error
	Logout(ctx context.Context) error
	Session(ctx context.Context) (models.SessionState, error)
}

type AdminService interface {
	Login(ctx context.Context, credentials models.AdminCredentials) (models.AdminToken, error)
	ParseToken(ctx context.Context, tokenString string) (models.AdminToken, error)
}

type UserService interface {
	List(ctx context.Context, query models.UserQuery) (models.UserPage, error)
	Create(ctx context.Context, user models.ManagedUser) (models.ManagedUser, error)
	ToggleStatus(ctx context.Context, id string) (models.ManagedUser, error)
	Delete(ctx context.Context, id string) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// SyncJob periodically refreshes balances while a session token is stored.
type SyncJob interface {
	// Start launches the background goroutine. A running job is stopped first.
	Start(ctx context.Context)

	// Stop cancels the goroutine and waits for it to exit. It is a no-op when
	// the job is not running.
	Stop()
}

// IDGenerator issues identifiers for new managed users.
type IDGenerator interface {
	Generate() string
}
