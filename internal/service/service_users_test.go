// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/MKhiriev/go-trade-dash/internal/logger"
	"github.com/MKhiriev/go-trade-dash/internal/mock"
	"github.com/MKhiriev/go-trade-dash/internal/store"
	"github.com/MKhiriev/go-trade-dash/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type seqIDs struct{ n int }

func (s *seqIDs) Generate() string {
	s.n++
	return fmt.Sprintf("id-%d", s.n)
}

func newTestUserService(t *testing.T) UserService {
	t.Helper()
	repo := store.NewManagedUserRepository(store.NewMemoryStorage(), logger.Nop())
	svc := NewUserService(repo, &seqIDs{}, logger.Nop())
	svc.(*userService).now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }
	return svc
}

func seedUsers(t *testing.T, svc UserService, n int) {
	t.Helper()
	for i := 1; i <= n; i++ {
		_, err := svc.Create(context.Background(), models.ManagedUser{
			Name:  fmt.Sprintf("User %02d", i),
			Email: fmt.Sprintf("user%02d@example.com", i),
		})
		require.NoError(t, err)
	}
}

func TestUserService_Create_Defaults(t *testing.T) {
	svc := newTestUserService(t)

	u, err := svc.Create(context.Background(), models.ManagedUser{Name: " Jane ", Email: "jane@example.com"})
	require.NoError(t, err)

	assert.Equal(t, "id-1", u.ID)
	assert.Equal(t, "Jane", u.Name)
	assert.Equal(t, models.UserStatusActive, u.Status)
	assert.Equal(t, models.UserAccountDemo, u.AccountType)
	assert.Equal(t, time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC), u.RegisteredAt)
	assert.Nil(t, u.LastLoginAt)
}

func TestUserService_Create_Validation(t *testing.T) {
	svc := newTestUserService(t)
	ctx := context.Background()

	tests := []models.ManagedUser{
		{Name: "", Email: "a@b.c"},
		{Name: "A", Email: "not-an-email"},
		{Name: "A", Email: "a@b.c", Status: "banned"},
		{Name: "A", Email: "a@b.c", AccountType: "crypto"},
	}
	for _, u := range tests {
		_, err := svc.Create(ctx, u)
		assert.ErrorIs(t, err, ErrInvalidDataProvided, "%+v", u)
	}

	_, err := svc.Create(ctx, models.ManagedUser{Name: "A", Email: "dup@example.com"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, models.ManagedUser{Name: "B", Email: "DUP@example.com"})
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestUserService_List_Pagination(t *testing.T) {
	svc := newTestUserService(t)
	seedUsers(t, svc, 23)
	ctx := context.Background()

	page, err := svc.List(ctx, models.UserQuery{})
	require.NoError(t, err)
	assert.Equal(t, 23, page.Total)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 10, page.PerPage)
	assert.Equal(t, 3, page.Pages)
	require.Len(t, page.Users, 10)
	assert.Equal(t, "User 01", page.Users[0].Name)

	page, err = svc.List(ctx, models.UserQuery{Page: 3})
	require.NoError(t, err)
	require.Len(t, page.Users, 3)
	assert.Equal(t, "User 21", page.Users[0].Name)

	page, err = svc.List(ctx, models.UserQuery{Page: 9})
	require.NoError(t, err)
	assert.Empty(t, page.Users)
	assert.Equal(t, 23, page.Total)

	page, err = svc.List(ctx, models.UserQuery{PerPage: 1000})
	require.NoError(t, err)
	assert.Equal(t, 100, page.PerPage)
	assert.Len(t, page.Users, 23)
}

func TestUserService_List_HugePageIsEmpty(t *testing.T) {
	svc := newTestUserService(t)
	seedUsers(t, svc, 23)
	ctx := context.Background()

	for _, p := range []int{math.MaxInt / 5, math.MaxInt / 10, math.MaxInt} {
		page, err := svc.List(ctx, models.UserQuery{Page: p, PerPage: 10})
		require.NoError(t, err)
		assert.Empty(t, page.Users)
		assert.Equal(t, 23, page.Total)
		assert.Equal(t, p, page.Page)
		assert.Equal(t, 3, page.Pages)
	}

	page, err := svc.List(ctx, models.UserQuery{Page: 4, PerPage: 10})
	require.NoError(t, err)
	assert.Empty(t, page.Users)
}

func TestUserService_List_Search(t *testing.T) {
	svc := newTestUserService(t)
	ctx := context.Background()

	for _, u := range []models.ManagedUser{
		{Name: "Alice Smith", Email: "alice@example.com"},
		{Name: "Bob Stone", Email: "bob@trading.io"},
		{Name: "Carol", Email: "carol.SMITH@example.com"},
	} {
		_, err := svc.Create(ctx, u)
		require.NoError(t, err)
	}

	page, err := svc.List(ctx, models.UserQuery{Search: "smith"})
	require.NoError(t, err)
	assert.Equal(t, 2, page.Total)

	page, err = svc.List(ctx, models.UserQuery{Search: "TRADING"})
	require.NoError(t, err)
	require.Equal(t, 1, page.Total)
	assert.Equal(t, "Bob Stone", page.Users[0].Name)

	page, err = svc.List(ctx, models.UserQuery{Search: "nobody"})
	require.NoError(t, err)
	assert.Equal(t, 0, page.Total)
	assert.Equal(t, 0, page.Pages)
	assert.Empty(t, page.Users)
}

func TestUserService_ToggleStatus(t *testing.T) {
	svc := newTestUserService(t)
	ctx := context.Background()

	u, err := svc.Create(ctx, models.ManagedUser{Name: "A", Email: "a@example.com"})
	require.NoError(t, err)

	u, err = svc.ToggleStatus(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, models.UserStatusSuspended, u.Status)

	u, err = svc.ToggleStatus(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, models.UserStatusActive, u.Status)

	inactive, err := svc.Create(ctx, models.ManagedUser{Name: "B", Email: "b@example.com", Status: models.UserStatusInactive})
	require.NoError(t, err)
	inactive, err = svc.ToggleStatus(ctx, inactive.ID)
	require.NoError(t, err)
	assert.Equal(t, models.UserStatusActive, inactive.Status)

	_, err = svc.ToggleStatus(ctx, "missing")
	assert.ErrorIs(t, err, ErrUserNotFound)

	page, err := svc.List(ctx, models.UserQuery{})
	require.NoError(t, err)
	assert.Equal(t, models.UserStatusActive, page.Users[0].Status, "toggle must be persisted")
}

func TestUserService_Delete(t *testing.T) {
	svc := newTestUserService(t)
	ctx := context.Background()
	seedUsers(t, svc, 3)

	require.NoError(t, svc.Delete(ctx, "id-2"))
	assert.ErrorIs(t, svc.Delete(ctx, "id-2"), ErrUserNotFound)

	page, err := svc.List(ctx, models.UserQuery{})
	require.NoError(t, err)
	require.Len(t, page.Users, 2)
	assert.Equal(t, "id-1", page.Users[0].ID)
	assert.Equal(t, "id-3", page.Users[1].ID)
}

func TestUserService_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockManagedUserRepository(ctrl)
	repo.EXPECT().ManagedUsers(gomock.Any()).Return(nil, errors.New("boom")).Times(3)

	svc := NewUserService(repo, &seqIDs{}, logger.Nop())
	ctx := context.Background()

	_, err := svc.List(ctx, models.UserQuery{})
	assert.Error(t, err)
	_, err = svc.ToggleStatus(ctx, "x")
	assert.Error(t, err)
	assert.Error(t, svc.Delete(ctx, "x"))
}
