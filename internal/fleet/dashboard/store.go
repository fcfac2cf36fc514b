// Copyright (c) 2026 Fleetra. All rights reserved.
// Author: quang.phan.hcm@gmail.com

package dashboard

import "context"

// Repository defines the aggregation queries behind the dashboard.
type Repository interface {
	Stats(context context.Context, ownerID string) (*Stats, error)
	WeeklyActivity(context context.Context, ownerID string) ([]DayActivity, error)
	ListAlerts(context context.Context, ownerID string, openOnly bool) ([]*Alert, error)
	AcknowledgeAlert(context context.Context, ownerID, id string) error
}

// StatsCache is a short-lived cache in front of the stats aggregation query.
//
// A miss is signalled by (nil, nil); cache failures are reported as errors so
// the service can fall through to the database.
type StatsCache interface {
	Get(context context.Context, ownerID string) (*Stats, error)
	Set(context context.Context, ownerID string, stats *Stats) error
}
