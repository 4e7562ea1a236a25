// Copyright (c) 2026 Polarnews Media. All rights reserved.
// Author: dev@polarnews.gl

package account

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/nuukmedia/polarnews/internal/platform/sec"
	"github.com/nuukmedia/polarnews/internal/platform/validate"
	"github.com/nuukmedia/polarnews/internal/users/auth"
)

// Service implements account administration use cases.
type Service struct {
	repository Repository
	logger     *slog.Logger
}

// NewService constructs an account administration service.
func NewService(repository Repository, logger *slog.Logger) *Service {
	return &Service{repository: repository, logger: logger}
}

// ListAccounts returns every back-office account.
func (service *Service) ListAccounts(ctx context.Context) ([]*auth.User, error) {
	return service.repository.List(ctx)
}

// CreateInput holds the data required to enroll a new account.
type CreateInput struct {
	Username string
	Email    string
	Password string
	Role     string
}

/*
CreateAccount validates, hashes, and persists a new back-office account.

Parameters:
  - ctx: context.Context
  - input: CreateInput

Returns:
  - *auth.User: The newly created account
  - error: Validation failures or apperr.Conflict on duplicates
*/
func (service *Service) CreateAccount(ctx context.Context, input CreateInput) (*auth.User, error) {

	validator := &validate.Validator{}
	err := validator.
		Required(auth.FieldUsername, input.Username).
		MinLen(auth.FieldUsername, input.Username, 3).
		Required(auth.FieldEmail, input.Email).
		Email(auth.FieldEmail, input.Email).
		Required(auth.FieldPassword, input.Password).
		MinLen(auth.FieldPassword, input.Password, 8).
		OneOf("role", input.Role, string(sec.RoleAdmin), string(sec.RoleEditor), string(sec.RoleMember)).
		Err()
	if err != nil {
		return nil, err
	}

	user := &auth.User{
		ID:           uuid.NewString(),
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: sec.HashPassword(input.Password),
		Role:         sec.UserRole(input.Role),
	}

	if err := service.repository.Create(ctx, user); err != nil {
		return nil, err
	}

	service.logger.Info("account_created",
		"user_id", user.ID,
		"username", user.Username,
		"role", input.Role,
	)

	return user, nil
}

/*
SetRole changes the role of an existing account.

Parameters:
  - ctx: context.Context
  - userID: string
  - role: string

Returns:
  - error: Validation failures or apperr.NotFound
*/
func (service *Service) SetRole(ctx context.Context, userID, role string) error {

	validator := &validate.Validator{}
	err := validator.
		UUID("user_id", userID).
		OneOf("role", role, string(sec.RoleAdmin), string(sec.RoleEditor), string(sec.RoleMember)).
		Err()
	if err != nil {
		return err
	}

	if err := service.repository.UpdateRole(ctx, userID, role); err != nil {
		return err
	}

	service.logger.Info("account_role_changed", "user_id", userID, "role", role)

	return nil
}

/*
DeleteAccount removes an account permanently.

Parameters:
  - ctx: context.Context
  - userID: string

Returns:
  - error: apperr.NotFound when the account does not exist
*/
func (service *Service) DeleteAccount(ctx context.Context, userID string) error {

	if err := service.repository.Delete(ctx, userID); err != nil {
		return err
	}

	service.logger.Info("account_deleted", "user_id", userID)

	return nil
}
