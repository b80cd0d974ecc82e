// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/go-trade-dash/internal/logger"
)

type syncJob struct {
	syncService AccountSyncService
	interval    time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

// NewSyncJob creates a job that calls syncService.SyncStored every interval.
// If interval is zero or negative it defaults to 5 minutes. The job is idle
// until Start is called.
func NewSyncJob(syncService AccountSyncService, interval time.Duration, logger *logger.Logger) SyncJob {
	if interval <= 0 {
		interval = 5 * time.Minute
	}

	return &syncJob{
		syncService: syncService,
		interval:    interval,
		logger:      logger,
	}
}

// Start implements SyncJob. Ticks without a stored token are skipped
// silently. The goroutine exits when ctx is cancelled or Stop is called.
func (j *syncJob) Start(ctx context.Context) {
	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(j.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.tick(jobCtx)
			}
		}
	}()
}

func (j *syncJob) tick(ctx context.Context) {
	err := j.syncService.SyncStored(ctx)
	switch {
	case err == nil, errors.Is(err, ErrNoSessionToken):
	case ctx.Err() != nil:
	default:
		j.logger.Err(err).Msg("scheduled account sync failed")
	}
}

// Stop implements SyncJob. It cancels the background goroutine's context and
// blocks until the goroutine has fully exited.
func (j *syncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
