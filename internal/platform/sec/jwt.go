// Copyright (c) 2026 Fleetra. All rights reserved.
// Author: quang.phan.hcm@gmail.com

// Package sec provides cryptographic primitives and session token management.
//
// # Architecture
//
// This package isolates security-sensitive code (Hashing, JWT Signing, Cookie
// lifecycle) from the domain logic. It acts as an Infrastructure service
// injected into the Application layer via small interfaces.
package sec

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// # Session Durations

const (
	// RememberedSessionTTL is the token lifetime when the client opts into
	// "remember me" at login (30 days).
	RememberedSessionTTL = 30 * 24 * time.Hour

	// ShortSessionTTL is the default token lifetime (24 hours).
	ShortSessionTTL = 24 * time.Hour
)

// ErrInvalidToken is returned by [TokenService.Verify] for every failure mode:
// bad signature, malformed payload, wrong signing method, or expiry.
// The caller treats all of them as "not authenticated" and must not surface
// which one occurred.
var ErrInvalidToken = errors.New("sec: invalid or expired session token")

// Identity is the minimal set of fields a session token proves.
type Identity struct {
	UserID string
	Email  string
	Role   UserRole
}

// SessionClaims is the payload embedded inside a session token.
//
// # Why custom claims?
//
// By embedding the UserID, Email, and Role directly inside the JWT, the route
// guard can reconstruct the active user context WITHOUT querying the database
// on every single request. Validity is determined purely by signature and
// expiry; there is no server-side revocation list.
type SessionClaims struct {
	jwt.RegisteredClaims

	UserID string `json:"userId"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

// TokenService issues and verifies HS256-signed session tokens.
//
// All methods are pure computation over the configured secret; the service
// holds no mutable state and is safe for concurrent use.
type TokenService struct {
	secret []byte
	issuer string

	// now is swappable so tests can pin the clock at expiry boundaries.
	now func() time.Time
}

// NewTokenService creates a TokenService signing with the given shared secret.
//
// An empty secret is rejected outright: silently falling back to a literal
// would make every deployment forgeable.
func NewTokenService(secret, issuer string) (*TokenService, error) {
	if secret == "" {
		return nil, errors.New("sec: session secret must not be empty")
	}
	return &TokenService{
		secret: []byte(secret),
		issuer: issuer,
		now:    time.Now,
	}, nil
}

// WithClock returns a copy of the service using the provided time source.
// Intended for tests only.
func (service *TokenService) WithClock(now func() time.Time) *TokenService {
	clone := *service
	clone.now = now
	return &clone
}

/*
Issue signs a session token for the given identity.

Description: Embeds the identity plus issued-at/expiry claims. The expiry is
one of exactly two durations: [RememberedSessionTTL] when longLived is true,
[ShortSessionTTL] otherwise.

Parameters:
  - identity: Identity (verified by the caller)
  - longLived: bool (remember-me selection)

Returns:
  - string: Signed compact JWT
  - error: Signing failures
*/
func (service *TokenService) Issue(identity Identity, longLived bool) (string, error) {
	timeToLive := ShortSessionTTL
	if longLived {
		timeToLive = RememberedSessionTTL
	}

	currentTime := service.now()
	claims := SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.UserID,
			Issuer:    service.issuer,
			IssuedAt:  jwt.NewNumericDate(currentTime),
			ExpiresAt: jwt.NewNumericDate(currentTime.Add(timeToLive)),
		},
		UserID: identity.UserID,
		Email:  identity.Email,
		Role:   string(identity.Role),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(service.secret)
	if err != nil {
		return "", fmt.Errorf("sec: failed to sign token: %w", err)
	}

	return signedToken, nil
}

/*
Verify checks the signature and validity of a session token string.

Description: Decodes the compact JWT, enforces the HMAC signing method, and
validates signature + expiry against the service clock. There is no soft
grace period past expiry.

Parameters:
  - tokenString: string

Returns:
  - *SessionClaims: Decoded identity claims
  - error: [ErrInvalidToken] for every verification failure
*/
func (service *TokenService) Verify(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("sec: unexpected signing method: %v", token.Header["alg"])
			}
			return service.secret, nil
		},
		jwt.WithTimeFunc(service.now),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)

	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// Identity reconstructs the [Identity] carried by verified claims.
func (claims *SessionClaims) Identity() Identity {
	return Identity{
		UserID: claims.UserID,
		Email:  claims.Email,
		Role:   UserRole(claims.Role),
	}
}
