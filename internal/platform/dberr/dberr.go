// Copyright (c) 2026 Polarnews Media. All rights reserved.
// Author: dev@polarnews.gl

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
//
// # Error Classification
//
//   - pgx.ErrNoRows           → NOT_FOUND
//   - SQLSTATE 23505 (unique) → CONFLICT, carrying the violated constraint name
//   - SQLSTATE 23503 (fkey)   → CONFLICT, carrying the violated constraint name
//   - anything else           → INTERNAL_ERROR (transient storage failure)
//
// Writers can inspect the constraint name via [ViolatedConstraint] to tell a
// duplicate-language insert apart from a duplicate detail record.
package dberr

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/nuukmedia/polarnews/internal/platform/apperr"
)

var (
	// ErrNotFound is a standard error returned when a queried row doesn't exist.
	ErrNotFound = apperr.NotFound("Resource")
)

// Postgres SQLSTATE classes relevant to integrity constraints.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
)

// Wrap inspects a database error and wraps it into a meaningful [apperr.AppError].
// It hides internal database details from the client while classifying the error type.
func Wrap(err error, action string) error {
	if err == nil {
		return nil
	}

	// 1. Not Found mapping
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}

	// 2. Integrity constraint mapping — surfaced so admin/crawler writes can
	// distinguish which invariant was breached.
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation, pgForeignKeyViolation, pgCheckViolation:
			violation := apperr.ConstraintViolation(pgErr.ConstraintName)
			violation.Cause = err
			return violation
		}
	}

	// 3. Unknown query errors become Internal Server Errors
	return apperr.Internal(err)
}

// ViolatedConstraint returns the database constraint name carried by a
// CONFLICT error, or "" when err is not a constraint violation.
func ViolatedConstraint(err error) string {
	ae := apperr.As(err)
	if ae == nil || ae.Code != "CONFLICT" {
		return ""
	}
	return ae.Constraint
}

// IsNotFound reports whether err represents a missing row.
func IsNotFound(err error) bool {
	ae := apperr.As(err)
	return ae != nil && ae.Code == "NOT_FOUND"
}
