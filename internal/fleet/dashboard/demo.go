// Copyright (c) 2026 Fleetra. All rights reserved.
// Author: quang.phan.hcm@gmail.com

package dashboard

import (
	"fmt"
	"hash/fnv"
	"time"
)

// The demo account has no rows in Postgres, so its dashboard is generated.
// Numbers are derived from a hash of the owner id: stable across requests
// and restarts, without a canned-looking block of constants.

// demoStats builds the deterministic headline block for a demo identity.
func demoStats(ownerID string) *Stats {
	seed := hashSeed(ownerID)

	total := 8 + int(seed%8) // 8..15 trucks
	maintenance := int(seed>>3) % 3
	drivers := total + int(seed>>5)%4
	teams := 2 + int(seed>>7)%3
	alerts := int(seed>>9) % 4

	return &Stats{
		TotalVehicles:  total,
		ActiveVehicles: total - maintenance,
		InMaintenance:  maintenance,
		TotalDrivers:   drivers,
		TotalTeams:     teams,
		OpenAlerts:     alerts,
		TotalMileageKm: int64(40_000 + seed%120_000),
	}
}

// demoWeeklyActivity builds seven days of plausible trip data ending today.
func demoWeeklyActivity(ownerID string, today time.Time) []DayActivity {
	seed := hashSeed(ownerID)

	days := make([]DayActivity, 0, 7)
	for i := 6; i >= 0; i-- {
		date := today.AddDate(0, 0, -i)
		daySeed := seed + uint64(date.YearDay())

		trips := 3 + int(daySeed%9)
		days = append(days, DayActivity{
			Day:        date.Format("2006-01-02"),
			Trips:      trips,
			DistanceKm: trips * (60 + int(daySeed>>4)%90),
		})
	}

	return days
}

// demoAlerts builds a small fixed alert feed for the demo identity.
func demoAlerts(ownerID string, today time.Time) []*Alert {
	seed := hashSeed(ownerID)

	messages := []struct {
		severity string
		message  string
	}{
		{SeverityWarning, "Truck %d is due for scheduled maintenance"},
		{SeverityInfo, "Driver assignment changed on truck %d"},
		{SeverityCritical, "Truck %d reported engine fault code"},
	}

	alerts := make([]*Alert, 0, len(messages))
	for i, m := range messages {
		truck := 1 + int((seed>>uint(i*3))%9)
		alerts = append(alerts, &Alert{
			ID:        fmt.Sprintf("demo-alert-%d", i+1),
			OwnerID:   ownerID,
			Severity:  m.severity,
			Message:   fmt.Sprintf(m.message, truck),
			CreatedAt: today.Add(-time.Duration(i+1) * 6 * time.Hour),
		})
	}

	return alerts
}

func hashSeed(ownerID string) uint64 {
	hasher := fnv.New64a()
	hasher.Write([]byte(ownerID))
	return hasher.Sum64()
}
