// Copyright (c) 2026 Polarnews Media. All rights reserved.
// Author: dev@polarnews.gl

package auth_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nuukmedia/polarnews/internal/platform/apperr"
	"github.com/nuukmedia/polarnews/internal/platform/sec"
	"github.com/nuukmedia/polarnews/internal/users/auth"
)

// fakeUserRepository holds a single account.
type fakeUserRepository struct {
	user *auth.User
}

func (fake *fakeUserRepository) FindByID(_ context.Context, id string) (*auth.User, error) {
	if fake.user != nil && fake.user.ID == id {
		return fake.user, nil
	}
	return nil, apperr.NotFound("Account")
}

func (fake *fakeUserRepository) FindByEmail(_ context.Context, email string) (*auth.User, error) {
	if fake.user != nil && fake.user.Email == email {
		return fake.user, nil
	}
	return nil, apperr.NotFound("Account")
}

func (fake *fakeUserRepository) FindByUsername(_ context.Context, username string) (*auth.User, error) {
	if fake.user != nil && fake.user.Username == username {
		return fake.user, nil
	}
	return nil, apperr.NotFound("Account")
}

func (fake *fakeUserRepository) UpdatePassword(_ context.Context, _, newHash string) error {
	fake.user.PasswordHash = newHash
	return nil
}

// fakeSessionRepository keeps sessions in a map keyed by token hash.
type fakeSessionRepository struct {
	sessions map[string]*auth.Session
}

func (fake *fakeSessionRepository) Create(_ context.Context, tokenHash string, session *auth.Session) error {
	fake.sessions[tokenHash] = session
	return nil
}

func (fake *fakeSessionRepository) FindByTokenHash(_ context.Context, tokenHash string) (*auth.Session, error) {
	if session, ok := fake.sessions[tokenHash]; ok {
		return session, nil
	}
	return nil, apperr.NotFound("Session")
}

func (fake *fakeSessionRepository) Revoke(_ context.Context, tokenHash string) error {
	delete(fake.sessions, tokenHash)
	return nil
}

// staticTokenProvider returns a fixed token string.
type staticTokenProvider struct{}

func (staticTokenProvider) GenerateAccessToken(_, _, _ string, _ time.Duration) (string, error) {
	return "signed-jwt", nil
}

func newTestService(users *fakeUserRepository) (*auth.Service, *fakeSessionRepository) {
	sessions := &fakeSessionRepository{sessions: map[string]*auth.Session{}}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return auth.NewService(users, sessions, staticTokenProvider{}, logger), sessions
}

func testUser() *auth.User {
	return &auth.User{
		ID:           "4f9c6a2e-0000-4000-8000-2b1a9f3e7d10",
		Username:     "najak",
		Email:        "najak@polarnews.gl",
		PasswordHash: sec.HashPassword("vinterhavn77"),
		Role:         sec.RoleEditor,
	}
}

func TestService_Login(t *testing.T) {
	service, sessions := newTestService(&fakeUserRepository{user: testUser()})

	session, err := service.Login(context.Background(), auth.LoginInput{
		Login:    "najak",
		Password: "vinterhavn77",
	})
	require.NoError(t, err)

	assert.Equal(t, "signed-jwt", session.AccessToken)
	assert.NotEmpty(t, session.RefreshToken)
	assert.Equal(t, "najak", session.User.Username)

	// The refresh token is stored hashed, never verbatim.
	_, stored := sessions.sessions[sec.HashToken(session.RefreshToken)]
	assert.True(t, stored)
	_, verbatim := sessions.sessions[session.RefreshToken]
	assert.False(t, verbatim)
}

func TestService_Login_ByEmail(t *testing.T) {
	service, _ := newTestService(&fakeUserRepository{user: testUser()})

	session, err := service.Login(context.Background(), auth.LoginInput{
		Login:    "najak@polarnews.gl",
		Password: "vinterhavn77",
	})
	require.NoError(t, err)
	assert.Equal(t, "najak", session.User.Username)
}

func TestService_Login_Rejections(t *testing.T) {
	tests := []struct {
		name  string
		input auth.LoginInput
	}{
		{"wrong_password", auth.LoginInput{Login: "najak", Password: "wrong"}},
		{"unknown_account", auth.LoginInput{Login: "nobody", Password: "vinterhavn77"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _ := newTestService(&fakeUserRepository{user: testUser()})

			_, err := service.Login(context.Background(), tt.input)
			require.Error(t, err)

			ae := apperr.As(err)
			require.NotNil(t, ae)
			// Identical message for both causes: no account enumeration.
			assert.Equal(t, "Invalid login credentials", ae.Message)
		})
	}
}

func TestService_RefreshSession_Rotation(t *testing.T) {
	service, sessions := newTestService(&fakeUserRepository{user: testUser()})

	first, err := service.Login(context.Background(), auth.LoginInput{
		Login:    "najak",
		Password: "vinterhavn77",
	})
	require.NoError(t, err)

	second, err := service.RefreshSession(context.Background(), first.RefreshToken, "", "")
	require.NoError(t, err)
	assert.NotEqual(t, first.RefreshToken, second.RefreshToken)

	// The first token is burned: replaying it fails.
	_, err = service.RefreshSession(context.Background(), first.RefreshToken, "", "")
	require.Error(t, err)

	// Exactly one live session remains.
	assert.Len(t, sessions.sessions, 1)
}

func TestService_ChangePassword(t *testing.T) {
	users := &fakeUserRepository{user: testUser()}
	service, _ := newTestService(users)

	err := service.ChangePassword(context.Background(), users.user.ID, "wrong", "nypassord99")
	require.Error(t, err)

	err = service.ChangePassword(context.Background(), users.user.ID, "vinterhavn77", "nypassord99")
	require.NoError(t, err)

	assert.Equal(t, sec.HashPassword("nypassord99"), users.user.PasswordHash)
}

func TestService_Logout_Idempotent(t *testing.T) {
	service, _ := newTestService(&fakeUserRepository{user: testUser()})

	assert.NoError(t, service.Logout(context.Background(), "never-issued"))
}
