// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-trade-dash/internal/config"
	"github.com/MKhiriev/go-trade-dash/internal/logger"
	"github.com/MKhiriev/go-trade-dash/internal/store"
	"github.com/MKhiriev/go-trade-dash/models"
)

// CallbackPath is where the broker redirects after OAuth.
const CallbackPath = "/auth/callback"

// authService handles the broker OAuth redirect and the session lifecycle.
type authService struct {
	session     store.SessionRepository
	guard       SessionGuard
	syncService AccountSyncService

	// loginURL is built once; every parameter comes from config.
	loginURL string

	logger *logger.Logger
}

func NewAuthService(session store.SessionRepository, guard SessionGuard, syncService AccountSyncService, cfg config.ServerConfig, logger *logger.Logger) AuthService {
	return &authService{
		session:     session,
		guard:       guard,
		syncService: syncService,
		loginURL:    buildLoginURL(cfg.Broker, cfg.App.PublicURL),
		logger:      logger,
	}
}

// buildLoginURL returns the broker authorize URL with app_id, l, brand,
// redirect_uri and space-joined scope.
func buildLoginURL(b config.Broker, publicURL string) string {
	params := url.Values{}
	params.Set("app_id", b.AppID)
	params.Set("l", b.Locale)
	params.Set("brand", b.Brand)
	params.Set("redirect_uri", strings.TrimRight(publicURL, "/")+CallbackPath)
	params.Set("scope", strings.Join(b.Scopes, " "))

	return b.OAuthURL + "?" + params.Encode()
}

func (a *authService) LoginURL() string {
	return a.loginURL
}

// HandleCallback stores the token delivered by the OAuth redirect and runs an
// initial sync. A failed sync is logged only: the token stays stored and the
// background job will retry.
func (a *authService) HandleCallback(ctx context.Context, token string) error {
	log := logger.FromContext(ctx)

	token = strings.TrimSpace(token)
	if token == "" {
		log.Warn().Msg("OAuth callback without token")
		return ErrNoTokenInCallback
	}

	if err := a.syncService.StartSession(ctx, token); err != nil {
		if errors.Is(err, ErrSessionNotStored) {
			log.Err(err).Msg("error storing session token")
			return err
		}
		log.Err(err).Msg("initial account sync failed")
	}

	return nil
}

// Logout waits for a running sync, so no run can re-store accounts after the
// session is cleared.
func (a *authService) Logout(ctx context.Context) error {
	if err := a.syncService.EndSession(ctx); err != nil {
		logger.FromContext(ctx).Err(err).Msg("error clearing session")
		return fmt.Errorf("error clearing session: %w", err)
	}
	return nil
}

func (a *authService) Session(ctx context.Context) (models.SessionState, error) {
	authenticated, err := a.guard.IsAuthenticated(ctx)
	if err != nil {
		return models.SessionState{}, err
	}

	admin, err := a.guard.IsAdmin(ctx)
	if err != nil {
		return models.SessionState{}, err
	}

	state := models.SessionState{Authenticated: authenticated, Admin: admin}
	if !authenticated {
		return state, nil
	}

	state.UserInfo, err = a.session.UserInfo(ctx)
	if err != nil {
		return models.SessionState{}, err
	}

	return state, nil
}
