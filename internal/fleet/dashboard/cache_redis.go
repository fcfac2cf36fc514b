// Copyright (c) 2026 Fleetra. All rights reserved.
// Author: quang.phan.hcm@gmail.com

package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/quangphan/fleetra/internal/platform/constants"
)

// statsCacheTTL keeps the stats block fresh enough for a dashboard while
// absorbing repeated page loads.
const statsCacheTTL = 60 * time.Second

// RedisStatsCache implements [StatsCache] on Redis with a per-owner key.
type RedisStatsCache struct {
	client *redis.Client
}

func NewRedisStatsCache(client *redis.Client) *RedisStatsCache {
	return &RedisStatsCache{client: client}
}

func (cache *RedisStatsCache) Get(context context.Context, ownerID string) (*Stats, error) {
	raw, err := cache.client.Get(context, statsKey(ownerID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	stats := &Stats{}
	if err := json.Unmarshal(raw, stats); err != nil {
		// A corrupt entry is a miss; it will be overwritten on Set.
		return nil, nil
	}

	return stats, nil
}

func (cache *RedisStatsCache) Set(context context.Context, ownerID string, stats *Stats) error {
	raw, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	return cache.client.Set(context, statsKey(ownerID), raw, statsCacheTTL).Err()
}

func statsKey(ownerID string) string {
	return constants.RedisPrefixFleetStats + ownerID
}
