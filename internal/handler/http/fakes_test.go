// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"time"

	"github.com/MKhiriev/go-trade-dash/internal/config"
	"github.com/MKhiriev/go-trade-dash/internal/logger"
	"github.com/MKhiriev/go-trade-dash/internal/service"
	"github.com/MKhiriev/go-trade-dash/models"
	"github.com/golang-jwt/jwt/v5"
)

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(context.Context) string {
	return m.version
}

type fakeAuthService struct {
	loginURL    string
	callbackErr error
	state       models.SessionState
	stateErr    error
	logoutErr   error

	mu            sync.Mutex
	callbackToken string
	logouts       int
}

func (f *fakeAuthService) LoginURL() string { return f.loginURL }

func (f *fakeAuthService) HandleCallback(_ context.Context, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.callbackToken = token
	return f.callbackErr
}

func (f *fakeAuthService) Logout(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.logouts++
	return f.logoutErr
}

func (f *fakeAuthService) Session(context.Context) (models.SessionState, error) {
	return f.state, f.stateErr
}

type fakeSyncService struct {
	accounts    models.Accounts
	accountsErr error
	syncErr     error
	syncs       int
}

func (f *fakeSyncService) Sync(context.Context, string) error { return f.syncErr }

func (f *fakeSyncService) SyncStored(context.Context) error {
	f.syncs++
	return f.syncErr
}

func (f *fakeSyncService) StartSession(context.Context, string) error { return f.syncErr }

func (f *fakeSyncService) EndSession(context.Context) error { return nil }

func (f *fakeSyncService) Accounts(context.Context) (models.Accounts, error) {
	return f.accounts, f.accountsErr
}

// fakeAdminService accepts validToken only.
type fakeAdminService struct {
	validToken string
	loginErr   error
	parseErr   error
}

func (f *fakeAdminService) Login(_ context.Context, creds models.AdminCredentials) (models.AdminToken, error) {
	if f.loginErr != nil {
		return models.AdminToken{}, f.loginErr
	}
	return models.AdminToken{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   creds.Email,
			ExpiresAt: jwt.NewNumericDate(time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)),
		},
		SignedString: f.validToken,
	}, nil
}

func (f *fakeAdminService) ParseToken(_ context.Context, tokenString string) (models.AdminToken, error) {
	if f.parseErr != nil {
		return models.AdminToken{}, f.parseErr
	}
	if tokenString != f.validToken {
		return models.AdminToken{}, service.ErrInvalidToken
	}
	return models.AdminToken{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "admin@example.com"},
		SignedString:     tokenString,
	}, nil
}

type fakeUserService struct {
	page      models.UserPage
	lastQuery models.UserQuery
	created   models.ManagedUser
	err       error
	lastID    string
}

func (f *fakeUserService) List(_ context.Context, q models.UserQuery) (models.UserPage, error) {
	f.lastQuery = q
	return f.page, f.err
}

func (f *fakeUserService) Create(_ context.Context, u models.ManagedUser) (models.ManagedUser, error) {
	if f.err != nil {
		return models.ManagedUser{}, f.err
	}
	u.ID = "new-id"
	f.created = u
	return u, nil
}

func (f *fakeUserService) ToggleStatus(_ context.Context, id string) (models.ManagedUser, error) {
	f.lastID = id
	if f.err != nil {
		return models.ManagedUser{}, f.err
	}
	return models.ManagedUser{ID: id, Status: models.UserStatusSuspended}, nil
}

func (f *fakeUserService) Delete(_ context.Context, id string) error {
	f.lastID = id
	return f.err
}

const testAdminToken = "admin-jwt"

// testServices bundles the fakes behind a *service.Services.
type testServices struct {
	auth  *fakeAuthService
	sync  *fakeSyncService
	admin *fakeAdminService
	users *fakeUserService
}

func newTestServices() (*service.Services, *testServices) {
	ts := &testServices{
		auth:  &fakeAuthService{loginURL: "https://oauth.example.com/authorize?app_id=1"},
		sync:  &fakeSyncService{},
		admin: &fakeAdminService{validToken: testAdminToken},
		users: &fakeUserService{},
	}

	return &service.Services{
		AccountSyncService: ts.sync,
		AuthService:        ts.auth,
		AdminService:       ts.admin,
		UserService:        ts.users,
		AppInfoService:     &mockAppInfoService{version: "test-version"},
	}, ts
}

func newTestRouter(metrics http.Handler, ratePerMinute int) (http.Handler, *testServices) {
	services, ts := newTestServices()
	h := NewHandler(services, metrics, config.Server{LoginRatePerMinute: ratePerMinute}, logger.Nop())
	return h.Init(), ts
}

func serve(router http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}
