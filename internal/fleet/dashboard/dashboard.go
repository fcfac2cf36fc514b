// Copyright (c) 2026 Fleetra. All rights reserved.
// Author: quang.phan.hcm@gmail.com

// Package dashboard aggregates fleet data into the numbers and feeds the
// dashboard landing page renders: headline stats, a week of trip activity,
// and the open alert list.
package dashboard

import "time"

// Alert severities.
const (
	SeverityInfo     = "info"
	SeverityWarning  = "warning"
	SeverityCritical = "critical"
)

// Stats is the headline block at the top of the dashboard.
type Stats struct {
	TotalVehicles  int   `json:"totalVehicles"`
	ActiveVehicles int   `json:"activeVehicles"`
	InMaintenance  int   `json:"inMaintenance"`
	TotalDrivers   int   `json:"totalDrivers"`
	TotalTeams     int   `json:"totalTeams"`
	OpenAlerts     int   `json:"openAlerts"`
	TotalMileageKm int64 `json:"totalMileageKm"`
}

// DayActivity is one bar in the weekly trip chart.
type DayActivity struct {
	Day        string `json:"day"` // ISO date (YYYY-MM-DD)
	Trips      int    `json:"trips"`
	DistanceKm int    `json:"distanceKm"`
}

// Alert is a single operational notification for an owner's fleet.
type Alert struct {
	ID           string    `json:"id"`
	OwnerID      string    `json:"ownerId"`
	VehicleID    *string   `json:"vehicleId"`
	Severity     string    `json:"severity"`
	Message      string    `json:"message"`
	Acknowledged bool      `json:"acknowledged"`
	CreatedAt    time.Time `json:"createdAt"`
}
