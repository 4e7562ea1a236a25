// Copyright (c) 2026 Polarnews Media. All rights reserved.
// Author: dev@polarnews.gl

package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/nuukmedia/polarnews/internal/platform/apperr"
	"github.com/nuukmedia/polarnews/internal/platform/sec"
	"github.com/nuukmedia/polarnews/internal/platform/validate"
)

// TokenProvider defines the contract for generating security tokens.
type TokenProvider interface {
	GenerateAccessToken(userID, username, role string, timeToLive time.Duration) (string, error)
}

// Service implements back-office authentication use cases.
type Service struct {
	userRepository    UserRepository
	sessionRepository SessionRepository
	tokenProvider     TokenProvider
	logger            *slog.Logger
}

// NewService constructs an authentication service with its dependencies.
func NewService(
	userRepo UserRepository,
	sessionRepo SessionRepository,
	tokenProv TokenProvider,
	logger *slog.Logger,
) *Service {
	return &Service{
		userRepository:    userRepo,
		sessionRepository: sessionRepo,
		tokenProvider:     tokenProv,
		logger:            logger,
	}
}

// LoginInput defines credentials for an authentication attempt.
type LoginInput struct {
	Login     string // Username or email
	Password  string
	UserAgent string
	IPAddress string
}

// LoginSession represents a successfully established session.
type LoginSession struct {
	AccessToken           string
	RefreshToken          string
	RefreshTokenExpiresAt time.Time
	User                  *User
}

/*
Login validates credentials and issues an access/refresh token pair.

The login value may be a username or an email. Lookup failures and
password mismatches both map to the same Unauthorized error so the
endpoint cannot be used to enumerate accounts.

Parameters:
  - ctx: context.Context
  - input: LoginInput

Returns:
  - *LoginSession: Tokens plus the authenticated user
  - error: apperr.Unauthorized or infrastructure failures
*/
func (service *Service) Login(ctx context.Context, input LoginInput) (*LoginSession, error) {

	validator := &validate.Validator{}
	err := validator.
		Required(FieldLogin, input.Login).
		Required(FieldPassword, input.Password).
		Err()
	if err != nil {
		return nil, err
	}

	user, err := service.userRepository.FindByUsername(ctx, input.Login)
	if err != nil {
		user, err = service.userRepository.FindByEmail(ctx, input.Login)
	}
	if err != nil {
		return nil, apperr.Unauthorized("Invalid login credentials")
	}

	if !sec.CheckPasswordHash(input.Password, user.PasswordHash) {
		return nil, apperr.Unauthorized("Invalid login credentials")
	}

	session, err := service.establishSession(ctx, user, input.UserAgent, input.IPAddress)
	if err != nil {
		return nil, err
	}

	service.logger.Info("user_logged_in",
		"user_id", user.ID,
		"username", user.Username,
		"role", string(user.Role),
	)

	return session, nil
}

/*
RefreshSession rotates a refresh token.

The presented token is verified, revoked so it can never be replayed, and
a fresh access/refresh pair is issued for the same account.

Parameters:
  - ctx: context.Context
  - refreshToken: string
  - userAgent: string
  - ipAddress: string

Returns:
  - *LoginSession: New tokens plus the authenticated user
  - error: apperr.Unauthorized or infrastructure failures
*/
func (service *Service) RefreshSession(ctx context.Context, refreshToken, userAgent, ipAddress string) (*LoginSession, error) {

	tokenHash := sec.HashToken(refreshToken)

	session, err := service.sessionRepository.FindByTokenHash(ctx, tokenHash)
	if err != nil {
		return nil, apperr.Unauthorized("Invalid or expired refresh token")
	}

	if err := service.sessionRepository.Revoke(ctx, tokenHash); err != nil {
		return nil, fmt.Errorf("auth_service_refresh_revoke_failed: %w", err)
	}

	user, err := service.userRepository.FindByID(ctx, session.UserID)
	if err != nil {
		return nil, apperr.Unauthorized("Account no longer exists")
	}

	return service.establishSession(ctx, user, userAgent, ipAddress)
}

// Logout revokes the session behind the refresh token. Revoking an
// already-gone session is treated as success; logout is idempotent.
func (service *Service) Logout(ctx context.Context, refreshToken string) error {

	tokenHash := sec.HashToken(refreshToken)

	if err := service.sessionRepository.Revoke(ctx, tokenHash); err != nil {
		return fmt.Errorf("auth_service_logout_failed: %w", err)
	}

	return nil
}

/*
ChangePassword verifies the current password and stores a new hash.

Parameters:
  - ctx: context.Context
  - userID: string
  - currentPassword: string
  - newPassword: string

Returns:
  - error: apperr.Unauthorized on a wrong current password
*/
func (service *Service) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {

	validator := &validate.Validator{}
	err := validator.
		Required(FieldCurrentPassword, currentPassword).
		Required(FieldNewPassword, newPassword).
		MinLen(FieldNewPassword, newPassword, 8).
		Err()
	if err != nil {
		return err
	}

	user, err := service.userRepository.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	if !sec.CheckPasswordHash(currentPassword, user.PasswordHash) {
		return apperr.Unauthorized("Current password is incorrect")
	}

	if err := service.userRepository.UpdatePassword(ctx, userID, sec.HashPassword(newPassword)); err != nil {
		return err
	}

	service.logger.Info("user_password_changed", "user_id", userID)

	return nil
}

// GetUser returns the account behind an authenticated request.
func (service *Service) GetUser(ctx context.Context, userID string) (*User, error) {
	return service.userRepository.FindByID(ctx, userID)
}

// establishSession mints the access token and persists a refresh session.
func (service *Service) establishSession(ctx context.Context, user *User, userAgent, ipAddress string) (*LoginSession, error) {

	accessToken, err := service.tokenProvider.GenerateAccessToken(user.ID, user.Username, string(user.Role), AccessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("auth_service_token_generation_failed: %w", err)
	}

	refreshToken, err := sec.GenerateSecureToken(RefreshTokenLength)
	if err != nil {
		return nil, fmt.Errorf("auth_service_refresh_token_failed: %w", err)
	}

	expiresAt := time.Now().Add(RefreshTokenTTL)
	session := &Session{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		Username:  user.Username,
		Role:      string(user.Role),
		UserAgent: userAgent,
		IPAddress: ipAddress,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now(),
	}

	if err := service.sessionRepository.Create(ctx, sec.HashToken(refreshToken), session); err != nil {
		return nil, fmt.Errorf("auth_service_session_creation_failed: %w", err)
	}

	return &LoginSession{
		AccessToken:           accessToken,
		RefreshToken:          refreshToken,
		RefreshTokenExpiresAt: expiresAt,
		User:                  user,
	}, nil
}
