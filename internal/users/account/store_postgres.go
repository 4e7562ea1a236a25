// Copyright (c) 2026 Polarnews Media. All rights reserved.
// Author: dev@polarnews.gl

package account

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nuukmedia/polarnews/internal/platform/database/schema"
	"github.com/nuukmedia/polarnews/internal/platform/dberr"
	"github.com/nuukmedia/polarnews/internal/users/auth"
)

// # PostgreSQL Repository

// postgresRepository implements [Repository] using pgx.
type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository constructs a PostgreSQL backed account store.
func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

func (repository *postgresRepository) List(ctx context.Context) ([]*auth.User, error) {

	sql := fmt.Sprintf(
		`SELECT %s FROM %s ORDER BY %s`,
		strings.Join(schema.UsersAccount.Columns(), ", "),
		schema.UsersAccount.Table,
		schema.UsersAccount.Username,
	)

	rows, err := repository.pool.Query(ctx, sql)
	if err != nil {
		return nil, dberr.Wrap(err, "account_list")
	}
	defer rows.Close()

	var users []*auth.User
	for rows.Next() {
		var user auth.User
		err := rows.Scan(
			&user.ID,
			&user.Email,
			&user.Username,
			&user.PasswordHash,
			&user.Role,
			&user.CreatedAt,
			&user.UpdatedAt,
		)
		if err != nil {
			return nil, dberr.Wrap(err, "account_list_scan")
		}
		users = append(users, &user)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "account_list_rows")
	}

	return users, nil
}

func (repository *postgresRepository) Create(ctx context.Context, user *auth.User) error {

	table := schema.UsersAccount

	sql := fmt.Sprintf(
		`INSERT INTO %s (%s, %s, %s, %s, %s) VALUES ($1, $2, $3, $4, $5)`,
		table.Table,
		table.ID, table.Email, table.Username, table.PasswordHash, table.Role,
	)

	_, err := repository.pool.Exec(ctx, sql,
		user.ID,
		user.Email,
		user.Username,
		user.PasswordHash,
		string(user.Role),
	)
	if err != nil {
		return dberr.Wrap(err, "account_create")
	}

	return nil
}

func (repository *postgresRepository) UpdateRole(ctx context.Context, userID, role string) error {

	table := schema.UsersAccount

	sql := fmt.Sprintf(
		`UPDATE %s SET %s = $1, %s = now() WHERE %s = $2`,
		table.Table,
		table.Role,
		table.UpdatedAt,
		table.ID,
	)

	tag, err := repository.pool.Exec(ctx, sql, role, userID)
	if err != nil {
		return dberr.Wrap(err, "account_update_role")
	}

	if tag.RowsAffected() == 0 {
		return dberr.Wrap(pgx.ErrNoRows, "account_update_role")
	}

	return nil
}

func (repository *postgresRepository) Delete(ctx context.Context, userID string) error {

	table := schema.UsersAccount

	sql := fmt.Sprintf(
		`DELETE FROM %s WHERE %s = $1`,
		table.Table,
		table.ID,
	)

	tag, err := repository.pool.Exec(ctx, sql, userID)
	if err != nil {
		return dberr.Wrap(err, "account_delete")
	}

	if tag.RowsAffected() == 0 {
		return dberr.Wrap(pgx.ErrNoRows, "account_delete")
	}

	return nil
}
