// Copyright (c) 2026 Fleetra. All rights reserved.
// Author: quang.phan.hcm@gmail.com

package driver

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

func (repository *PostgresRepository) ListByOwner(context context.Context, ownerID string, limit, offset int) ([]*Driver, int, error) {
	query := `
		SELECT id, ownerid, name, phone, licenseno, teamid, vehicleid, createdat,
		       COUNT(*) OVER() AS total
		FROM fleet.driver
		WHERE ownerid = $1
		ORDER BY name ASC
		LIMIT $2 OFFSET $3`

	rows, err := repository.db.Query(context, query, ownerID, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "Driver")
	}
	defer rows.Close()

	drivers := make([]*Driver, 0)
	total := 0
	for rows.Next() {
		driver := &Driver{}
		if err := rows.Scan(
			&driver.ID, &driver.OwnerID, &driver.Name, &driver.Phone,
			&driver.LicenseNo, &driver.TeamID, &driver.VehicleID, &driver.CreatedAt,
			&total,
		); err != nil {
			return nil, 0, dberr.Wrap(err, "Driver")
		}
		drivers = append(drivers, driver)
	}

	return drivers, total, nil
}

func (repository *PostgresRepository) FindByID(context context.Context, ownerID, id string) (*Driver, error) {
	query := `
		SELECT id, ownerid, name, phone, licenseno, teamid, vehicleid, createdat
		FROM fleet.driver
		WHERE ownerid = $1 AND id = $2`

	driver := &Driver{}
	err := repository.db.QueryRow(context, query, ownerID, id).Scan(
		&driver.ID, &driver.OwnerID, &driver.Name, &driver.Phone,
		&driver.LicenseNo, &driver.TeamID, &driver.VehicleID, &driver.CreatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "Driver")
	}

	return driver, nil
}

func (repository *PostgresRepository) Create(context context.Context, driver *Driver) error {
	query := `
		INSERT INTO fleet.driver (id, ownerid, name, phone, licenseno, teamid, vehicleid)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING createdat`

	err := repository.db.QueryRow(context, query,
		driver.ID, driver.OwnerID, driver.Name, driver.Phone,
		driver.LicenseNo, driver.TeamID, driver.VehicleID,
	).Scan(&driver.CreatedAt)
	if err != nil {
		return dberr.Wrap(err, "Driver")
	}

	return nil
}

func (repository *PostgresRepository) Update(context context.Context, driver *Driver) error {
	tag, err := repository.db.Exec(context, `
		UPDATE fleet.driver
		SET name = $3, phone = $4, licenseno = $5, teamid = $6, vehicleid = $7
		WHERE ownerid = $1 AND id = $2`,
		driver.OwnerID, driver.ID, driver.Name, driver.Phone,
		driver.LicenseNo, driver.TeamID, driver.VehicleID,
	)
	if err != nil {
		return dberr.Wrap(err, "Driver")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Driver")
	}

	return nil
}

func (repository *PostgresRepository) Delete(context context.Context, ownerID, id string) error {
	tag, err := repository.db.Exec(context,
		`DELETE FROM fleet.driver WHERE ownerid = $1 AND id = $2`, ownerID, id)
	if err != nil {
		return dberr.Wrap(err, "Driver")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Driver")
	}

	return nil
}
