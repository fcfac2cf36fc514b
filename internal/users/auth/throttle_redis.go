// Copyright (c) 2026 Fleetra. All rights reserved.
// Author: quang.phan.hcm@gmail.com

package auth

import (
	"errors"
	"fmt"
	"strings"

	stdctx "context"

	"github.com/redis/go-redis/v9"

	"github.com/quangphan/fleetra/internal/platform/constants"
)

// RedisLoginThrottle implements ThrottleRepository using Redis counters.
//
// Keys expire after [LoginThrottleWindow] on their own, so an abandoned
// attack decays without any cleanup job.
type RedisLoginThrottle struct {
	client *redis.Client
}

// NewLoginThrottle creates a Redis-backed ThrottleRepository.
func NewLoginThrottle(client *redis.Client) *RedisLoginThrottle {
	return &RedisLoginThrottle{client: client}
}

// Failures returns the current failure count for the key (0 if absent).
func (repository *RedisLoginThrottle) Failures(context stdctx.Context, key string) (int, error) {
	count, err := repository.client.Get(context, throttleKey(key)).Int()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, fmt.Errorf("redis_login_throttle_get_failed: %w", err)
	}
	return count, nil
}

// RecordFailure increments the failure count and returns the new value.
// The expiry window starts with the first failure and is not extended by
// later ones, so a slow trickle of failures still unlocks eventually.
func (repository *RedisLoginThrottle) RecordFailure(context stdctx.Context, key string) (int, error) {
	redisKey := throttleKey(key)

	count, err := repository.client.Incr(context, redisKey).Result()
	if err != nil {
		return 0, fmt.Errorf("redis_login_throttle_incr_failed: %w", err)
	}

	if count == 1 {
		if err := repository.client.Expire(context, redisKey, LoginThrottleWindow).Err(); err != nil {
			return int(count), fmt.Errorf("redis_login_throttle_expire_failed: %w", err)
		}
	}

	return int(count), nil
}

// Clear removes the failure counter after a successful login.
func (repository *RedisLoginThrottle) Clear(context stdctx.Context, key string) error {
	if err := repository.client.Del(context, throttleKey(key)).Err(); err != nil {
		return fmt.Errorf("redis_login_throttle_del_failed: %w", err)
	}
	return nil
}

// throttleKey builds the namespaced Redis key for an account identifier.
func throttleKey(key string) string {
	return constants.RedisPrefixLoginThrottle + strings.ToLower(key)
}
