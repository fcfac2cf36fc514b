// Copyright (c) 2026 Fleetra. All rights reserved.
// Author: quang.phan.hcm@gmail.com

/*
Package auth implements the user identity and session boundary.

It defines the core domain entity (User), the credential verification and
session issuance logic, and the HTTP surface for the authentication lifecycle
(register, login, logout, identity check).

# Architecture

Sessions are fully stateless: a signed, time-limited token in an HTTP-only
cookie is the only session state that exists. There is no server-side session
table and no revocation list; a token stays valid until it expires or the
client deletes the cookie.
*/
package auth

import (
	"time"

	"github.com/quangphan/fleetra/internal/platform/sec"
)

// # Domain Entities

// User represents a registered fleet account.
type User struct {
	ID           string       `json:"id"`
	Company      string       `json:"company"`
	Email        string       `json:"email"`
	PasswordHash string       `json:"-"` // Explicitly omitted from JSON for security.
	Phone        string       `json:"phone"`
	TruckCount   int          `json:"truck_count"`
	Role         sec.UserRole `json:"role"`
	CreatedAt    time.Time    `json:"created_at"`
}

// premiumTruckThreshold is the fleet size above which an account is premium.
const premiumTruckThreshold = 5

// IsPremium reports whether the account qualifies for the premium tier.
// It is always derived from TruckCount, never stored.
func (user *User) IsPremium() bool {
	return user.TruckCount > premiumTruckThreshold
}

// View is the sanitized representation of a [User] returned by the API.
// It can never carry the password hash because the field does not exist.
type View struct {
	ID         string       `json:"id"`
	Company    string       `json:"company"`
	Email      string       `json:"email"`
	Phone      string       `json:"phone"`
	TruckCount int          `json:"truckCount"`
	IsPremium  bool         `json:"isPremium"`
	Role       sec.UserRole `json:"role"`
	CreatedAt  time.Time    `json:"createdAt"`
}

// View builds the sanitized API representation of the user.
func (user *User) View() View {
	return View{
		ID:         user.ID,
		Company:    user.Company,
		Email:      user.Email,
		Phone:      user.Phone,
		TruckCount: user.TruckCount,
		IsPremium:  user.IsPremium(),
		Role:       user.Role,
		CreatedAt:  user.CreatedAt,
	}
}

// # Identity Resolution

// ResolutionKind tags how an identity check was satisfied.
type ResolutionKind string

const (
	// ResolutionPersisted means the identity resolved to a database record.
	ResolutionPersisted ResolutionKind = "persisted"

	// ResolutionDemo means the identity is the reserved demo account served
	// from a fixed in-memory profile, never the database.
	ResolutionDemo ResolutionKind = "demo"
)

// ResolvedIdentity is the result of resolving a verified token back to an
// account. Tagging the source keeps the demo short-circuit explicit instead
// of hiding a missing-record bug behind an ad-hoc conditional.
type ResolvedIdentity struct {
	Kind ResolutionKind
	User *User
}

// # Field Identifiers

// Global field names for validation and identity mapping in the authentication domain.
const (
	FieldCompany    = "company"
	FieldEmail      = "email"
	FieldPassword   = "password"
	FieldPhone      = "phone"
	FieldTruckCount = "truckCount"
	FieldRole       = "role"
	FieldMessage    = "message"
	FieldUser       = "user"
)
