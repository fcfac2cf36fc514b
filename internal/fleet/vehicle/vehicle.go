// Copyright (c) 2026 Fleetra. All rights reserved.
// Author: quang.phan.hcm@gmail.com

// Package vehicle manages the trucks that make up an owner's fleet.
//
// Every operation is scoped to the owner taken from the session; one owner
// can never read or mutate another owner's vehicles.
package vehicle

import "time"

// Vehicle lifecycle states.
const (
	StatusActive      = "active"
	StatusMaintenance = "maintenance"
	StatusRetired     = "retired"
)

// Statuses is the closed set of valid lifecycle states.
var Statuses = []string{StatusActive, StatusMaintenance, StatusRetired}

// Vehicle represents a single truck in an owner's fleet.
type Vehicle struct {
	ID      string `json:"id"`
	OwnerID string `json:"ownerId"`

	// Plate is stored in canonical form (uppercased, separators stripped)
	// so the per-owner uniqueness constraint catches duplicates.
	Plate string `json:"plate"`

	Label     string    `json:"label,omitempty"`
	Status    string    `json:"status"`
	MileageKm int       `json:"mileageKm"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
