// Copyright (c) 2026 Fleetra. All rights reserved.
// Author: quang.phan.hcm@gmail.com

package auth

import (
	"time"

	"github.com/quangphan/fleetra/internal/platform/sec"
)

// # Authentication Constraints

const (
	// MinPasswordLength is the minimum accepted password length at registration.
	MinPasswordLength = 6

	// MaxLoginFailures is the number of consecutive failed logins per account
	// before further attempts are throttled.
	MaxLoginFailures = 5

	// LoginThrottleWindow is how long the failure counter lives in Redis.
	// A successful login clears it immediately.
	LoginThrottleWindow = 15 * time.Minute
)

// # Demo Account

const (
	// DemoUserID is the reserved identity that short-circuits to a fixed
	// in-memory profile instead of a database lookup. Used by the hosted
	// product demo so the dashboard renders without provisioning data.
	DemoUserID = "demo-user"
)

// demoFixture is the fixed profile served for [DemoUserID].
// It is a function so callers can never mutate shared state.
func demoFixture() *User {
	return &User{
		ID:         DemoUserID,
		Company:    "Fleetra Demo Logistics",
		Email:      "demo@fleetra.app",
		Phone:      "555-0100",
		TruckCount: 12,
		Role:       sec.RoleOwner,
		CreatedAt:  time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
	}
}
