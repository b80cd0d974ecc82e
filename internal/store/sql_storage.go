// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-trade-dash/internal/logger"
)

const (
	kvTable = "kv_entries"

	upsertSuffix = "ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at"

	maxSQLAttempts = 3
)

// sqlRetryDelay is the pause before the n-th retry of a retryable failure.
var sqlRetryDelay = func(attempt int) time.Duration {
	return time.Duration(attempt) * 50 * time.Millisecond
}

// sqlStorage implements [Storage] over the kv_entries table shared by the
// SQLite and PostgreSQL backends.
type sqlStorage struct {
	db  *DB
	now func() time.Time
}

// NewSQLStorage wraps db. Migrations must already be applied.
func NewSQLStorage(db *DB) Storage {
	return &sqlStorage{db: db, now: time.Now}
}

func (s *sqlStorage) Get(ctx context.Context, key string) (string, error) {
	log := logger.FromContext(ctx)

	query, args, err := s.db.builder.
		Select("value").
		From(kvTable).
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	err = s.withRetry(ctx, func() error {
		return s.db.QueryRowContext(ctx, query, args...).Scan(&value)
	})
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return "", ErrKeyNotFound
	case err != nil:
		log.Err(err).Str("func", "*sqlStorage.Get").Str("key", key).Str("pg_code", postgresError(err)).Msg("error reading kv entry")
		return "", fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return value, nil
}

func (s *sqlStorage) Set(ctx context.Context, key, value string) error {
	log := logger.FromContext(ctx)

	query, args, err := s.db.builder.
		Insert(kvTable).
		Columns("key", "value", "updated_at").
		Values(key, value, s.now().UTC()).
		Suffix(upsertSuffix).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = s.withRetry(ctx, func() error {
		_, execErr := s.db.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).Str("func", "*sqlStorage.Set").Str("key", key).Str("pg_code", postgresError(err)).Msg("error upserting kv entry")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *sqlStorage) Remove(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	log := logger.FromContext(ctx)

	query, args, err := s.db.builder.
		Delete(kvTable).
		Where(sq.Eq{"key": keys}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = s.withRetry(ctx, func() error {
		_, execErr := s.db.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).Str("func", "*sqlStorage.Remove").Strs("keys", keys).Msg("error deleting kv entries")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *sqlStorage) Close() error {
	return s.db.Close()
}

// withRetry runs fn until it succeeds, fails with a non-retryable error or
// maxSQLAttempts is reached.
func (s *sqlStorage) withRetry(ctx context.Context, fn func() error) error {
	var err error
	for attempt := 1; attempt <= maxSQLAttempts; attempt++ {
		err = fn()
		if err == nil || s.db.errorClassificator.Classify(err) != Retryable {
			return err
		}
		if attempt == maxSQLAttempts {
			break
		}

		select {
		case <-ctx.Done():
			return errors.Join(err, ctx.Err())
		case <-time.After(sqlRetryDelay(attempt)):
		}
	}
	return err
}
