package team

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

func (repository *PostgresRepository) ListByOwner(context context.Context, ownerID string) ([]*Team, error) {
	query := `
		SELECT t.id, t.ownerid, t.name, t.region, t.createdat,
		       COUNT(d.id) AS drivercount
		FROM fleet.team t
		LEFT JOIN fleet.driver d ON d.teamid = t.id
		WHERE t.ownerid = $1
		GROUP BY t.id
		ORDER BY t.name ASC`

	rows, err := repository.db.Query(context, query, ownerID)
	if err != nil {
		return nil, dberr.Wrap(err, "Team")
	}
	defer rows.Close()

	teams := make([]*Team, 0)
	for rows.Next() {
		team := &Team{}
		if err := rows.Scan(&team.ID, &team.OwnerID, &team.Name, &team.Region, &team.CreatedAt, &team.DriverCount); err != nil {
			return nil, dberr.Wrap(err, "Team")
		}
		teams = append(teams, team)
	}

	return teams, nil
}

func (repository *PostgresRepository) FindByID(context context.Context, ownerID, id string) (*Team, error) {
	query := `
		SELECT t.id, t.ownerid, t.name, t.region, t.createdat,
		       (SELECT COUNT(*) FROM fleet.driver d WHERE d.teamid = t.id) AS drivercount
		FROM fleet.team t
		WHERE t.ownerid = $1 AND t.id = $2`

	team := &Team{}
	err := repository.db.QueryRow(context, query, ownerID, id).Scan(
		&team.ID, &team.OwnerID, &team.Name, &team.Region, &team.CreatedAt, &team.DriverCount,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "Team")
	}

	return team, nil
}

func (repository *PostgresRepository) Create(context context.Context, team *Team) error {
	err := repository.db.QueryRow(context, `
		INSERT INTO fleet.team (id, ownerid, name, region)
		VALUES ($1, $2, $3, $4)
		RETURNING createdat`,
		team.ID, team.OwnerID, team.Name, team.Region,
	).Scan(&team.CreatedAt)
	if err != nil {
		return dberr.Wrap(err, "Team")
	}

	return nil
}

func (repository *PostgresRepository) Update(context context.Context, team *Team) error {
	tag, err := repository.db.Exec(context, `
		UPDATE fleet.team SET name = $3, region = $4
		WHERE ownerid = $1 AND id = $2`,
		team.OwnerID, team.ID, team.Name, team.Region,
	)
	if err != nil {
		return dberr.Wrap(err, "Team")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Team")
	}

	return nil
}

func (repository *PostgresRepository) Delete(context context.Context, ownerID, id string) error {
	tag, err := repository.db.Exec(context,
		`DELETE FROM fleet.team WHERE ownerid = $1 AND id = $2`, ownerID, id)
	if err != nil {
		return dberr.Wrap(err, "Team")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Team")
	}

	return nil
}
