// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-trade-dash/internal/broker"
	"github.com/MKhiriev/go-trade-dash/internal/config"
	"github.com/MKhiriev/go-trade-dash/internal/logger"
	"github.com/MKhiriev/go-trade-dash/internal/metrics"
	"github.com/MKhiriev/go-trade-dash/internal/store"
	"github.com/MKhiriev/go-trade-dash/models"
)

// accountSyncService is the concrete implementation of AccountSyncService.
type accountSyncService struct {
	dialer  broker.Dialer
	session store.SessionRepository
	metrics metrics.Recorder

	// timeout bounds one run, including the wait for the previous one.
	timeout time.Duration

	// sem holds one slot. A run owns it from dial to close; session changes
	// take it too so they never interleave with a run.
	sem chan struct{}

	logger *logger.Logger
}

// NewAccountSyncService returns an AccountSyncService that dials the broker
// through dialer and persists through session.
func NewAccountSyncService(dialer broker.Dialer, session store.SessionRepository, recorder metrics.Recorder, cfg config.Broker, logger *logger.Logger) AccountSyncService {
	if recorder == nil {
		recorder = metrics.Nop{}
	}

	return &accountSyncService{
		dialer:  dialer,
		session: session,
		metrics: recorder,
		timeout: cfg.SyncBudget(),
		sem:     make(chan struct{}, 1),
		logger:  logger,
	}
}

func (s *accountSyncService) Sync(ctx context.Context, token string) error {
	if token == "" {
		return ErrNoSessionToken
	}

	return s.exclusive(ctx, func(ctx context.Context) error {
		return s.measuredRun(ctx, token)
	})
}

func (s *accountSyncService) SyncStored(ctx context.Context) error {
	return s.exclusive(ctx, func(ctx context.Context) error {
		token, err := s.session.Token(ctx)
		if err != nil {
			return fmt.Errorf("error reading session token: %w", err)
		}
		if token == "" {
			return ErrNoSessionToken
		}

		return s.measuredRun(ctx, token)
	})
}

func (s *accountSyncService) StartSession(ctx context.Context, token string) error {
	if token == "" {
		return ErrNoSessionToken
	}

	return s.exclusive(ctx, func(ctx context.Context) error {
		if err := s.session.SetToken(ctx, token); err != nil {
			return fmt.Errorf("%w: %w", ErrSessionNotStored, err)
		}

		return s.measuredRun(ctx, token)
	})
}

func (s *accountSyncService) EndSession(ctx context.Context) error {
	return s.exclusive(ctx, func(ctx context.Context) error {
		if err := s.session.Clear(ctx); err != nil {
			return fmt.Errorf("%w: %w", ErrSessionNotStored, err)
		}
		return nil
	})
}

// exclusive runs fn while holding the sync slot. The timeout covers the wait
// for the slot as well.
func (s *accountSyncService) exclusive(ctx context.Context, fn func(ctx context.Context) error) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	select {
	case s.sem <- struct{}{}:
	case <-ctx.Done():
		return ctx.Err()
	}
	defer func() { <-s.sem }()

	return fn(ctx)
}

func (s *accountSyncService) measuredRun(ctx context.Context, token string) error {
	start := time.Now()
	err := s.run(ctx, token)
	s.metrics.RecordSync(syncOutcome(err), time.Since(start))

	return err
}

func (s *accountSyncService) Accounts(ctx context.Context) (models.Accounts, error) {
	return s.session.Accounts(ctx)
}

func (s *accountSyncService) run(ctx context.Context, token string) error {
	log := &logger.Logger{Logger: s.logger.With().Str("component", "account_sync").Logger()}

	conn, err := s.dialer.Dial(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		log.Err(err).Msg("error connecting to broker")
		return fmt.Errorf("%w: %w", ErrBrokerTransport, err)
	}
	defer conn.Close()

	// cancellation unblocks a pending Receive
	stop := context.AfterFunc(ctx, func() { _ = conn.Close() })
	defer stop()

	err = newSyncRun(conn, s.session, s.metrics, log).execute(ctx, token)
	if err != nil {
		return err
	}

	log.Debug().Msg("account sync finished")
	return nil
}

func syncOutcome(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeSuccess
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return metrics.OutcomeCanceled
	case errors.Is(err, ErrAuthorizeRejected), errors.Is(err, ErrAccountListRejected):
		return metrics.OutcomeRejected
	case errors.Is(err, ErrBrokerTransport):
		return metrics.OutcomeTransport
	case errors.Is(err, broker.ErrMalformedMessage), errors.Is(err, broker.ErrUnexpectedMessage):
		return metrics.OutcomeProtocol
	default:
		return metrics.OutcomeStorage
	}
}
