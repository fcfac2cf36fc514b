// Copyright (c) 2026 Fleetra. All rights reserved.
// Author: quang.phan.hcm@gmail.com

package dashboard

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/quangphan/fleetra/internal/platform/apperr"
	"github.com/quangphan/fleetra/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Stats runs the headline aggregation in a single round-trip using
// conditional counts.
func (repository *PostgresRepository) Stats(context context.Context, ownerID string) (*Stats, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM fleet.vehicle v WHERE v.ownerid = $1),
			(SELECT COUNT(*) FROM fleet.vehicle v WHERE v.ownerid = $1 AND v.status = 'active'),
			(SELECT COUNT(*) FROM fleet.vehicle v WHERE v.ownerid = $1 AND v.status = 'maintenance'),
			(SELECT COUNT(*) FROM fleet.driver d WHERE d.ownerid = $1),
			(SELECT COUNT(*) FROM fleet.team t WHERE t.ownerid = $1),
			(SELECT COUNT(*) FROM fleet.alert a WHERE a.ownerid = $1 AND NOT a.acknowledged),
			(SELECT COALESCE(SUM(v.mileagekm), 0) FROM fleet.vehicle v WHERE v.ownerid = $1)`

	stats := &Stats{}
	err := repository.db.QueryRow(context, query, ownerID).Scan(
		&stats.TotalVehicles, &stats.ActiveVehicles, &stats.InMaintenance,
		&stats.TotalDrivers, &stats.TotalTeams, &stats.OpenAlerts,
		&stats.TotalMileageKm,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "Stats")
	}

	return stats, nil
}

// WeeklyActivity buckets the last seven days of trips per day. Days without
// trips are included with zero counts so the chart renders a full week.
func (repository *PostgresRepository) WeeklyActivity(context context.Context, ownerID string) ([]DayActivity, error) {
	query := `
		SELECT d.day::date::text,
		       COUNT(t.id),
		       COALESCE(SUM(t.distancekm), 0)
		FROM generate_series(CURRENT_DATE - INTERVAL '6 days', CURRENT_DATE, '1 day') AS d(day)
		LEFT JOIN fleet.trip t
		       ON t.ownerid = $1 AND t.startedat::date = d.day::date
		GROUP BY d.day
		ORDER BY d.day ASC`

	rows, err := repository.db.Query(context, query, ownerID)
	if err != nil {
		return nil, dberr.Wrap(err, "WeeklyActivity")
	}
	defer rows.Close()

	days := make([]DayActivity, 0, 7)
	for rows.Next() {
		var day DayActivity
		if err := rows.Scan(&day.Day, &day.Trips, &day.DistanceKm); err != nil {
			return nil, dberr.Wrap(err, "WeeklyActivity")
		}
		days = append(days, day)
	}

	return days, nil
}

func (repository *PostgresRepository) ListAlerts(context context.Context, ownerID string, openOnly bool) ([]*Alert, error) {
	query := `
		SELECT id, ownerid, vehicleid, severity, message, acknowledged, createdat
		FROM fleet.alert
		WHERE ownerid = $1 AND ($2 = false OR NOT acknowledged)
		ORDER BY createdat DESC`

	rows, err := repository.db.Query(context, query, ownerID, openOnly)
	if err != nil {
		return nil, dberr.Wrap(err, "Alert")
	}
	defer rows.Close()

	alerts := make([]*Alert, 0)
	for rows.Next() {
		alert := &Alert{}
		if err := rows.Scan(
			&alert.ID, &alert.OwnerID, &alert.VehicleID, &alert.Severity,
			&alert.Message, &alert.Acknowledged, &alert.CreatedAt,
		); err != nil {
			return nil, dberr.Wrap(err, "Alert")
		}
		alerts = append(alerts, alert)
	}

	return alerts, nil
}

func (repository *PostgresRepository) AcknowledgeAlert(context context.Context, ownerID, id string) error {
	tag, err := repository.db.Exec(context,
		`UPDATE fleet.alert SET acknowledged = true WHERE ownerid = $1 AND id = $2`,
		ownerID, id)
	if err != nil {
		return dberr.Wrap(err, "Alert")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Alert")
	}

	return nil
}
