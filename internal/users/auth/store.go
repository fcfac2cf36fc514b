// Copyright (c) 2026 Fleetra. All rights reserved.
// Author: quang.phan.hcm@gmail.com

package auth

import (
	"context"
)

// # User Data Access

// UserRepository defines the data access contract for user accounts.
//
// The auth core only ever creates and reads accounts; it never mutates them.
// Password changes and profile edits are outside this boundary.
type UserRepository interface {

	/*
		FindByID returns the account with the given ID.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - *User: Hydrated entity
		  - error: apperr.NotFound or database retrieval failures
	*/
	FindByID(context context.Context, id string) (*User, error)

	/*
		FindByEmail returns the account with the given email.
		The lookup is case-insensitive; implementations must compare the
		lowercased form.

		Parameters:
		  - context: context.Context
		  - email: string

		Returns:
		  - *User: Hydrated entity
		  - error: apperr.NotFound or database retrieval failures
	*/
	FindByEmail(context context.Context, email string) (*User, error)

	/*
		Create persists a brand-new user account to the storage.

		Parameters:
		  - context: context.Context
		  - user: *User

		Returns:
		  - error: Persistence failures
	*/
	Create(context context.Context, user *User) error
}

// # Login Throttling

// ThrottleRepository tracks consecutive failed login attempts per account
// in volatile storage. Counters expire on their own; the auth service treats
// throttle storage failures as a disabled throttle, never as a login failure.
type ThrottleRepository interface {

	// Failures returns the current failure count for the key (0 if absent).
	Failures(context context.Context, key string) (int, error)

	// RecordFailure increments the failure count and returns the new value.
	// The first failure starts the expiry window.
	RecordFailure(context context.Context, key string) (int, error)

	// Clear removes the failure counter after a successful login.
	Clear(context context.Context, key string) error
}
