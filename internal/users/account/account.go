// Copyright (c) 2026 Polarnews Media. All rights reserved.
// Author: dev@polarnews.gl

/*
Package account handles administration of back-office accounts.

Administrators use it to enroll editors, adjust roles, and remove
departed staff. It depends on the auth package for the User entity.
*/
package account

import (
	"context"

	"github.com/nuukmedia/polarnews/internal/users/auth"
)

// # Data Access

// Repository defines the data access contract for account administration.
type Repository interface {

	/*
		List returns every account, ordered by username.

		Parameters:
		  - context: context.Context

		Returns:
		  - []*auth.User: Hydrated entities
		  - error: Database retrieval failures
	*/
	List(context context.Context) ([]*auth.User, error)

	/*
		Create persists a brand-new account.

		Parameters:
		  - context: context.Context
		  - user: *auth.User

		Returns:
		  - error: apperr.Conflict on duplicate username/email
	*/
	Create(context context.Context, user *auth.User) error

	/*
		UpdateRole changes the role of an existing account.

		Parameters:
		  - context: context.Context
		  - userID: string
		  - role: string

		Returns:
		  - error: apperr.NotFound when the account does not exist
	*/
	UpdateRole(context context.Context, userID, role string) error

	/*
		Delete removes an account permanently.

		Parameters:
		  - context: context.Context
		  - userID: string

		Returns:
		  - error: apperr.NotFound when the account does not exist
	*/
	Delete(context context.Context, userID string) error
}
