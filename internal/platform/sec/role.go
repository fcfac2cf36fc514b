// Copyright (c) 2026 Fleetra. All rights reserved.
// Author: quang.phan.hcm@gmail.com

package sec

// # User Roles

// UserRole represents the authorization level granted to an account.
//
// The role set is closed: every switch over UserRole must handle exactly
// these values and treat anything else as invalid.
type UserRole string

const (
	// RoleOwner is a fleet owner account: full control over the company's
	// vehicles, drivers, and teams.
	RoleOwner UserRole = "owner"

	// RoleDriver is a driver account: read access to the fleet it belongs to.
	RoleDriver UserRole = "driver"
)

// Valid reports whether the role is one of the closed set.
func (r UserRole) Valid() bool {
	switch r {
	case RoleOwner, RoleDriver:
		return true
	default:
		return false
	}
}

// CanManageFleet reports whether the role may create, update, or delete
// fleet records. Drivers are read-only.
func (r UserRole) CanManageFleet() bool {
	switch r {
	case RoleOwner:
		return true
	case RoleDriver:
		return false
	default:
		return false
	}
}
