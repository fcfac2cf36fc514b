// Copyright (c) 2026 Fleetra. All rights reserved.
// Author: quang.phan.hcm@gmail.com

package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/quangphan/fleetra/internal/platform/apperr"
	"github.com/quangphan/fleetra/internal/platform/dberr"
)

// PostgresUserRepository implements the UserRepository interface using pgx.
//
// # Error Mapping
//
// Storage-specific errors (like pgx.ErrNoRows) are mapped to domain-friendly
// [apperr.AppError] types to avoid leaking storage implementation details.
type PostgresUserRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository creates a new PostgreSQL implementation of the UserRepository.
func NewUserRepository(pool *pgxpool.Pool) *PostgresUserRepository {
	return &PostgresUserRepository{pool: pool}
}

/*
Create persists a new user record into the users.account table.

Description: Emails are stored lowercased so the unique index enforces the
case-insensitive uniqueness invariant at the storage layer, not just in the
service's pre-check.

Parameters:
  - context: context.Context
  - user: *User (Entity to persist)

Returns:
  - error: apperr.Conflict on duplicate email, or connectivity errors
*/
func (repository *PostgresUserRepository) Create(context context.Context, user *User) error {
	const query = `
		INSERT INTO users.account (
			id, company, email, passwordhash, phone, truckcount, role, createdat
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	user.Email = strings.ToLower(user.Email)

	_, err := repository.pool.Exec(context, query,
		user.ID,
		user.Company,
		user.Email,
		user.PasswordHash,
		user.Phone,
		user.TruckCount,
		user.Role,
		user.CreatedAt,
	)

	if err != nil {
		if dberr.IsUniqueViolation(err) {
			return apperr.Conflict("Email is already registered")
		}
		return fmt.Errorf("postgres_user_repo_create_failed: %w", err)
	}

	return nil
}

/*
FindByEmail retrieves a user record by their unique email address.

Parameters:
  - context: context.Context
  - email: string (any casing)

Returns:
  - *User: Hydrated account entity
  - error: apperr.NotFound or database errors
*/
func (repository *PostgresUserRepository) FindByEmail(context context.Context, email string) (*User, error) {
	const query = `
		SELECT id, company, email, passwordhash, phone, truckcount, role, createdat
		FROM users.account
		WHERE email = $1`

	user := &User{}
	err := repository.pool.QueryRow(context, query, strings.ToLower(email)).Scan(
		&user.ID,
		&user.Company,
		&user.Email,
		&user.PasswordHash,
		&user.Phone,
		&user.TruckCount,
		&user.Role,
		&user.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("User")
		}
		return nil, fmt.Errorf("postgres_user_repo_find_by_email_failed: %w", err)
	}

	return user, nil
}

/*
FindByID retrieves a user record by their unique ID.

Parameters:
  - context: context.Context
  - id: string (UUIDv7)

Returns:
  - *User: Hydrated account entity
  - error: apperr.NotFound or execution errors
*/
func (repository *PostgresUserRepository) FindByID(context context.Context, id string) (*User, error) {
	const query = `
		SELECT id, company, email, passwordhash, phone, truckcount, role, createdat
		FROM users.account
		WHERE id = $1`

	user := &User{}
	err := repository.pool.QueryRow(context, query, id).Scan(
		&user.ID,
		&user.Company,
		&user.Email,
		&user.PasswordHash,
		&user.Phone,
		&user.TruckCount,
		&user.Role,
		&user.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("User")
		}
		return nil, fmt.Errorf("postgres_user_repo_find_by_id_failed: %w", err)
	}

	return user, nil
}
