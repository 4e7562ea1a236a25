// Copyright (c) 2026 Polarnews Media. All rights reserved.
// Author: dev@polarnews.gl

package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nuukmedia/polarnews/internal/platform/database/schema"
	"github.com/nuukmedia/polarnews/internal/platform/dberr"
)

// # PostgreSQL Repository

// PostgresUserRepository implements [UserRepository] using pgx.
type PostgresUserRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository constructs a PostgreSQL backed user store.
func NewUserRepository(pool *pgxpool.Pool) *PostgresUserRepository {
	return &PostgresUserRepository{pool: pool}
}

// accountColumns is the select list shared by every account lookup.
func accountColumns() string {
	return strings.Join(schema.UsersAccount.Columns(), ", ")
}

// findBy fetches a single account by an arbitrary unique column.
func (repository *PostgresUserRepository) findBy(ctx context.Context, column string, value string) (*User, error) {

	sql := fmt.Sprintf(
		`SELECT %s FROM %s WHERE %s = $1`,
		accountColumns(),
		schema.UsersAccount.Table,
		column,
	)

	var user User
	err := repository.pool.QueryRow(ctx, sql, value).Scan(
		&user.ID,
		&user.Email,
		&user.Username,
		&user.PasswordHash,
		&user.Role,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "account_find")
	}

	return &user, nil
}

/*
FindByID returns the account with the given ID.

Parameters:
  - ctx: context.Context
  - id: string

Returns:
  - *User: Hydrated entity
  - error: Database retrieval failures
*/
func (repository *PostgresUserRepository) FindByID(ctx context.Context, id string) (*User, error) {
	return repository.findBy(ctx, schema.UsersAccount.ID, id)
}

/*
FindByEmail returns the account with the given email.

Parameters:
  - ctx: context.Context
  - email: string

Returns:
  - *User: Hydrated entity
  - error: Database retrieval failures
*/
func (repository *PostgresUserRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	return repository.findBy(ctx, schema.UsersAccount.Email, email)
}

/*
FindByUsername returns the account with the given username.

Parameters:
  - ctx: context.Context
  - username: string

Returns:
  - *User: Hydrated entity
  - error: Database retrieval failures
*/
func (repository *PostgresUserRepository) FindByUsername(ctx context.Context, username string) (*User, error) {
	return repository.findBy(ctx, schema.UsersAccount.Username, username)
}

/*
UpdatePassword replaces only the user's password hash.

Parameters:
  - ctx: context.Context
  - userID: string
  - newHash: string

Returns:
  - error: Persistence failures
*/
func (repository *PostgresUserRepository) UpdatePassword(ctx context.Context, userID, newHash string) error {

	sql := fmt.Sprintf(
		`UPDATE %s SET %s = $1, %s = now() WHERE %s = $2`,
		schema.UsersAccount.Table,
		schema.UsersAccount.PasswordHash,
		schema.UsersAccount.UpdatedAt,
		schema.UsersAccount.ID,
	)

	tag, err := repository.pool.Exec(ctx, sql, newHash, userID)
	if err != nil {
		return dberr.Wrap(err, "account_update_password")
	}

	if tag.RowsAffected() == 0 {
		return dberr.Wrap(pgx.ErrNoRows, "account_update_password")
	}

	return nil
}
