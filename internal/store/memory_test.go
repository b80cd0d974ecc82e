// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStorage_GetSetRemove(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStorage()

	_, err := s.Get(ctx, KeyToken)
	assert.ErrorIs(t, err, ErrKeyNotFound)

	require.NoError(t, s.Set(ctx, KeyToken, "a1-token"))
	got, err := s.Get(ctx, KeyToken)
	require.NoError(t, err)
	assert.Equal(t, "a1-token", got)

	require.NoError(t, s.Remove(ctx, KeyToken, "never-set"))
	_, err = s.Get(ctx, KeyToken)
	assert.ErrorIs(t, err, ErrKeyNotFound)

	assert.NoError(t, s.Close())
}

func TestMemoryStorage_ConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStorage()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.Set(ctx, KeyAccounts, "[]")
			_, _ = s.Get(ctx, KeyAccounts)
			_ = s.Remove(ctx, KeyAccounts)
		}()
	}
	wg.Wait()
}
