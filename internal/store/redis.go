// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/go-trade-dash/internal/logger"
)

const defaultRedisKeyPrefix = "trade-dash:"

type redisStorage struct {
	client *redis.Client
	prefix string
}

// NewRedisStorage connects to the redis:// (or rediss://) DSN. An optional
// "prefix" query parameter namespaces every key; it defaults to "trade-dash:".
func NewRedisStorage(ctx context.Context, dsn string, log *logger.Logger) (Storage, error) {
	cleanDSN, prefix, err := splitRedisPrefix(dsn)
	if err != nil {
		return nil, err
	}

	opt, err := redis.ParseURL(cleanDSN)
	if err != nil {
		return nil, fmt.Errorf("error parsing redis dsn: %w", err)
	}

	client := redis.NewClient(opt)
	if err = client.Ping(ctx).Err(); err != nil {
		log.Err(err).Str("func", "NewRedisStorage").Msg("error connecting redis (ping)")
		client.Close()
		return nil, fmt.Errorf("error connecting redis: %w", err)
	}
	log.Info().Str("func", "NewRedisStorage").Str("prefix", prefix).Msg("connected to redis successfully")

	return newRedisStorage(client, prefix), nil
}

func newRedisStorage(client *redis.Client, prefix string) *redisStorage {
	return &redisStorage{client: client, prefix: prefix}
}

func (s *redisStorage) Get(ctx context.Context, key string) (string, error) {
	value, err := s.client.Get(ctx, s.prefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrKeyNotFound
	}
	if err != nil {
		return "", fmt.Errorf("redis get %q: %w", key, err)
	}
	return value, nil
}

func (s *redisStorage) Set(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, s.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %q: %w", key, err)
	}
	return nil
}

func (s *redisStorage) Remove(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	prefixed := make([]string, 0, len(keys))
	for _, key := range keys {
		prefixed = append(prefixed, s.prefix+key)
	}

	if err := s.client.Del(ctx, prefixed...).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}

func (s *redisStorage) Close() error {
	return s.client.Close()
}

// splitRedisPrefix removes the "prefix" query parameter, which go-redis would
// reject as an unknown option.
func splitRedisPrefix(dsn string) (string, string, error) {
	u, err := url.Parse(dsn)
	if err != nil {
		return "", "", fmt.Errorf("error parsing redis dsn: %w", err)
	}

	query := u.Query()
	prefix := defaultRedisKeyPrefix
	if query.Has("prefix") {
		prefix = query.Get("prefix")
		query.Del("prefix")
		u.RawQuery = query.Encode()
	}

	return u.String(), prefix, nil
}
