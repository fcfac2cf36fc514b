// Copyright (c) 2026 Fleetra. All rights reserved.
// Author: quang.phan.hcm@gmail.com

package vehicle

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

func (repository *PostgresRepository) ListByOwner(context context.Context, ownerID string, limit, offset int) ([]*Vehicle, int, error) {
	query := `
		SELECT id, ownerid, plate, label, status, mileagekm, createdat, updatedat,
		       COUNT(*) OVER() AS total
		FROM fleet.vehicle
		WHERE ownerid = $1
		ORDER BY createdat DESC
		LIMIT $2 OFFSET $3`

	rows, err := repository.db.Query(context, query, ownerID, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "Vehicle")
	}
	defer rows.Close()

	vehicles := make([]*Vehicle, 0)
	total := 0
	for rows.Next() {
		vehicle := &Vehicle{}
		if err := rows.Scan(
			&vehicle.ID, &vehicle.OwnerID, &vehicle.Plate, &vehicle.Label,
			&vehicle.Status, &vehicle.MileageKm, &vehicle.CreatedAt, &vehicle.UpdatedAt,
			&total,
		); err != nil {
			return nil, 0, dberr.Wrap(err, "Vehicle")
		}
		vehicles = append(vehicles, vehicle)
	}

	return vehicles, total, nil
}

func (repository *PostgresRepository) FindByID(context context.Context, ownerID, id string) (*Vehicle, error) {
	query := `
		SELECT id, ownerid, plate, label, status, mileagekm, createdat, updatedat
		FROM fleet.vehicle
		WHERE ownerid = $1 AND id = $2`

	vehicle := &Vehicle{}
	err := repository.db.QueryRow(context, query, ownerID, id).Scan(
		&vehicle.ID, &vehicle.OwnerID, &vehicle.Plate, &vehicle.Label,
		&vehicle.Status, &vehicle.MileageKm, &vehicle.CreatedAt, &vehicle.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "Vehicle")
	}

	return vehicle, nil
}

func (repository *PostgresRepository) Create(context context.Context, vehicle *Vehicle) error {
	query := `
		INSERT INTO fleet.vehicle (id, ownerid, plate, label, status, mileagekm)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING createdat, updatedat`

	err := repository.db.QueryRow(context, query,
		vehicle.ID, vehicle.OwnerID, vehicle.Plate, vehicle.Label,
		vehicle.Status, vehicle.MileageKm,
	).Scan(&vehicle.CreatedAt, &vehicle.UpdatedAt)
	if err != nil {
		return dberr.Wrap(err, "Vehicle")
	}

	return nil
}

func (repository *PostgresRepository) Update(context context.Context, vehicle *Vehicle) error {
	query := `
		UPDATE fleet.vehicle
		SET plate = $3, label = $4, status = $5, mileagekm = $6, updatedat = NOW()
		WHERE ownerid = $1 AND id = $2
		RETURNING updatedat`

	err := repository.db.QueryRow(context, query,
		vehicle.OwnerID, vehicle.ID, vehicle.Plate, vehicle.Label,
		vehicle.Status, vehicle.MileageKm,
	).Scan(&vehicle.UpdatedAt)
	if err != nil {
		return dberr.Wrap(err, "Vehicle")
	}

	return nil
}

func (repository *PostgresRepository) Delete(context context.Context, ownerID, id string) error {
	tag, err := repository.db.Exec(context,
		`DELETE FROM fleet.vehicle WHERE ownerid = $1 AND id = $2`, ownerID, id)
	if err != nil {
		return dberr.Wrap(err, "Vehicle")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Vehicle")
	}

	return nil
}
