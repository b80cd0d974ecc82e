// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-trade-dash/internal/logger"
	"github.com/MKhiriev/go-trade-dash/models"
)

func TestManagedUserRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewManagedUserRepository(NewMemoryStorage(), logger.Nop())

	users, err := repo.ManagedUsers(ctx)
	require.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)

	registered := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	want := []models.ManagedUser{{
		ID:           "0194f1d2-0000-7000-8000-000000000001",
		Name:         "Ada Lovelace",
		Email:        "ada@example.com",
		Status:       models.UserStatusActive,
		AccountType:  models.UserAccountBoth,
		RegisteredAt: registered,
	}}
	require.NoError(t, repo.SaveManagedUsers(ctx, want))

	got, err := repo.ManagedUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestManagedUserRepository_Malformed(t *testing.T) {
	ctx := context.Background()
	storage := NewMemoryStorage()
	require.NoError(t, storage.Set(ctx, KeyManagedUsers, "nope"))

	users, err := NewManagedUserRepository(storage, logger.Nop()).ManagedUsers(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)
}
