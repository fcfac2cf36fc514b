// Copyright (c) 2026 Fleetra. All rights reserved.
// Author: quang.phan.hcm@gmail.com

package sec_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quangphan/fleetra/internal/platform/sec"
)

const testSecret = "unit-test-secret-key"

func newTestService(t *testing.T) *sec.TokenService {
	t.Helper()
	service, err := sec.NewTokenService(testSecret, "fleetra.test")
	require.NoError(t, err)
	return service
}

/*
TestTokenService_EmptySecret verifies that the constructor rejects an empty
secret instead of silently signing with a forgeable key.
*/
func TestTokenService_EmptySecret(t *testing.T) {
	service, err := sec.NewTokenService("", "fleetra.test")
	require.Error(t, err)
	assert.Nil(t, service)
}

/*
TestTokenService_RoundTrip verifies Issue followed by Verify restores the
identity for both session durations.
*/
func TestTokenService_RoundTrip(t *testing.T) {
	tests := []struct {
		name      string
		longLived bool
	}{
		{"short_session", false},
		{"remembered_session", true},
	}

	identity := sec.Identity{
		UserID: "user-123",
		Email:  "owner@fleetra.app",
		Role:   sec.RoleOwner,
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := newTestService(t)

			token, err := service.Issue(identity, tt.longLived)
			require.NoError(t, err)
			require.NotEmpty(t, token)

			claims, err := service.Verify(token)
			require.NoError(t, err)

			assert.Equal(t, identity.UserID, claims.UserID)
			assert.Equal(t, identity.Email, claims.Email)
			assert.Equal(t, string(identity.Role), claims.Role)
			assert.Equal(t, identity, claims.Identity())
		})
	}
}

/*
TestTokenService_ExpiryBoundaries pins the clock and checks that tokens are
valid just before their lifetime elapses and invalid just after.
*/
func TestTokenService_ExpiryBoundaries(t *testing.T) {
	tests := []struct {
		name      string
		longLived bool
		lifetime  time.Duration
	}{
		{"short_session_24h", false, sec.ShortSessionTTL},
		{"remembered_session_30d", true, sec.RememberedSessionTTL},
	}

	issuedAt := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	identity := sec.Identity{UserID: "user-123", Email: "owner@fleetra.app", Role: sec.RoleOwner}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issuer := newTestService(t).WithClock(func() time.Time { return issuedAt })

			token, err := issuer.Issue(identity, tt.longLived)
			require.NoError(t, err)

			// 1. One second before expiry: still valid.
			beforeExpiry := newTestService(t).WithClock(func() time.Time {
				return issuedAt.Add(tt.lifetime - time.Second)
			})
			_, err = beforeExpiry.Verify(token)
			assert.NoError(t, err)

			// 2. One second after expiry: rejected.
			afterExpiry := newTestService(t).WithClock(func() time.Time {
				return issuedAt.Add(tt.lifetime + time.Second)
			})
			_, err = afterExpiry.Verify(token)
			assert.ErrorIs(t, err, sec.ErrInvalidToken)
		})
	}
}

/*
TestTokenService_Verify_Failures checks that every verification failure mode
collapses into the single ErrInvalidToken.
*/
func TestTokenService_Verify_Failures(t *testing.T) {
	service := newTestService(t)

	validToken, err := service.Issue(sec.Identity{UserID: "user-123", Role: sec.RoleOwner}, false)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"empty_string", ""},
		{"garbage", "not-a-jwt"},
		{"truncated", validToken[:len(validToken)-10]},
		{"tampered_signature", validToken + "x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := service.Verify(tt.token)
			assert.ErrorIs(t, err, sec.ErrInvalidToken)
			assert.Nil(t, claims)
		})
	}
}

/*
TestTokenService_Verify_WrongSecret verifies tokens signed with a different
secret are rejected.
*/
func TestTokenService_Verify_WrongSecret(t *testing.T) {
	issuer, err := sec.NewTokenService("secret-a", "fleetra.test")
	require.NoError(t, err)
	verifier, err := sec.NewTokenService("secret-b", "fleetra.test")
	require.NoError(t, err)

	token, err := issuer.Issue(sec.Identity{UserID: "user-123", Role: sec.RoleDriver}, false)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, sec.ErrInvalidToken)
}
