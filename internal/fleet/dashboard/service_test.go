// Copyright (c) 2026 Fleetra. All rights reserved.
// Author: quang.phan.hcm@gmail.com

package dashboard_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quangphan/fleetra/internal/fleet/dashboard"
	"github.com/quangphan/fleetra/internal/users/auth"
)

// The demo identity never touches the repository or cache, so the service is
// constructed with nil dependencies on purpose; reaching them would panic
// and fail the test.
func newDemoService() *dashboard.Service {
	return dashboard.NewService(nil, nil, slog.Default())
}

/*
TestService_DemoStats verifies demo numbers are deterministic and internally
consistent.
*/
func TestService_DemoStats(t *testing.T) {
	service := newDemoService()

	first, err := service.GetStats(context.Background(), auth.DemoUserID)
	require.NoError(t, err)
	second, err := service.GetStats(context.Background(), auth.DemoUserID)
	require.NoError(t, err)

	// Deterministic across calls.
	assert.Equal(t, first, second)

	// The headline numbers must add up.
	assert.Equal(t, first.TotalVehicles, first.ActiveVehicles+first.InMaintenance)
	assert.Positive(t, first.TotalVehicles)
	assert.Positive(t, first.TotalDrivers)
	assert.Positive(t, first.TotalMileageKm)
}

/*
TestService_DemoWeeklyActivity verifies the generated chart covers exactly
the trailing seven days.
*/
func TestService_DemoWeeklyActivity(t *testing.T) {
	today := time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)
	service := newDemoService().WithClock(func() time.Time { return today })

	days, err := service.GetWeeklyActivity(context.Background(), auth.DemoUserID)
	require.NoError(t, err)
	require.Len(t, days, 7)

	assert.Equal(t, "2026-03-04", days[0].Day)
	assert.Equal(t, "2026-03-10", days[6].Day)

	for _, day := range days {
		assert.Positive(t, day.Trips)
		assert.Positive(t, day.DistanceKm)
	}

	// Same clock, same numbers.
	again, err := service.GetWeeklyActivity(context.Background(), auth.DemoUserID)
	require.NoError(t, err)
	assert.Equal(t, days, again)
}

/*
TestService_DemoAlerts verifies the generated alert feed and that
acknowledging a demo alert is a no-op success.
*/
func TestService_DemoAlerts(t *testing.T) {
	today := time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)
	service := newDemoService().WithClock(func() time.Time { return today })

	alerts, err := service.ListAlerts(context.Background(), auth.DemoUserID, false)
	require.NoError(t, err)
	require.NotEmpty(t, alerts)

	for _, alert := range alerts {
		assert.Equal(t, auth.DemoUserID, alert.OwnerID)
		assert.Contains(t, []string{
			dashboard.SeverityInfo, dashboard.SeverityWarning, dashboard.SeverityCritical,
		}, alert.Severity)
		assert.False(t, alert.Acknowledged)
	}

	assert.NoError(t, service.AcknowledgeAlert(context.Background(), auth.DemoUserID, alerts[0].ID))
}
