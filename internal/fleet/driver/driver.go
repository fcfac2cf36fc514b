// Copyright (c) 2026 Fleetra. All rights reserved.
// Author: quang.phan.hcm@gmail.com

// Package driver manages the people driving an owner's trucks, including
// their optional team and vehicle assignments.
package driver

import "time"

// Driver represents an employed driver under a fleet owner.
type Driver struct {
	ID      string `json:"id"`
	OwnerID string `json:"ownerId"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`

	// LicenseNo is stored as entered; it is display data, not an identifier.
	LicenseNo string `json:"licenseNo"`

	// TeamID and VehicleID are nil while the driver is unassigned.
	TeamID    *string `json:"teamId"`
	VehicleID *string `json:"vehicleId"`

	CreatedAt time.Time `json:"createdAt"`
}
