// Copyright (c) 2026 Polarnews Media. All rights reserved.
// Author: dev@polarnews.gl

package auth

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nuukmedia/polarnews/internal/platform/middleware"
	request "github.com/nuukmedia/polarnews/internal/platform/request"
	"github.com/nuukmedia/polarnews/internal/platform/respond"
)

// # HTTP Handler

// Handler exposes the authentication endpoints for the back-office.
type Handler struct {
	service *Service
	logger  *slog.Logger
}

func NewHandler(service *Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes mounts the auth routes on the given router.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Route("/auth", func(group chi.Router) {
		group.Post("/login", handler.login)
		group.Post("/refresh", handler.refresh)
		group.Post("/logout", handler.logout)

		group.Group(func(private chi.Router) {
			private.Use(middleware.RequireAuth)
			private.Get("/me", handler.me)
			private.Post("/change-password", handler.changePassword)
		})
	})
}

// # Request / Response Types

type loginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type sessionResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
	User         *User  `json:"user"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// # Endpoints

// login handles POST /auth/login.
func (handler *Handler) login(writer http.ResponseWriter, httpRequest *http.Request) {

	var body loginRequest
	if err := request.DecodeJSON(httpRequest, &body); err != nil {
		respond.Error(writer, httpRequest, err)
		return
	}

	session, err := handler.service.Login(httpRequest.Context(), LoginInput{
		Login:     body.Login,
		Password:  body.Password,
		UserAgent: httpRequest.UserAgent(),
		IPAddress: middleware.RealIP(httpRequest),
	})
	if err != nil {
		respond.Error(writer, httpRequest, err)
		return
	}

	respond.OK(writer, newSessionResponse(session))
}

// refresh handles POST /auth/refresh with token rotation.
func (handler *Handler) refresh(writer http.ResponseWriter, httpRequest *http.Request) {

	var body refreshRequest
	if err := request.DecodeJSON(httpRequest, &body); err != nil {
		respond.Error(writer, httpRequest, err)
		return
	}

	session, err := handler.service.RefreshSession(
		httpRequest.Context(),
		body.RefreshToken,
		httpRequest.UserAgent(),
		middleware.RealIP(httpRequest),
	)
	if err != nil {
		respond.Error(writer, httpRequest, err)
		return
	}

	respond.OK(writer, newSessionResponse(session))
}

// logout handles POST /auth/logout.
func (handler *Handler) logout(writer http.ResponseWriter, httpRequest *http.Request) {

	var body refreshRequest
	if err := request.DecodeJSON(httpRequest, &body); err != nil {
		respond.Error(writer, httpRequest, err)
		return
	}

	if err := handler.service.Logout(httpRequest.Context(), body.RefreshToken); err != nil {
		respond.Error(writer, httpRequest, err)
		return
	}

	respond.NoContent(writer)
}

// me handles GET /auth/me.
func (handler *Handler) me(writer http.ResponseWriter, httpRequest *http.Request) {

	userID, err := request.RequiredUserID(httpRequest)
	if err != nil {
		respond.Error(writer, httpRequest, err)
		return
	}

	user, err := handler.service.GetUser(httpRequest.Context(), userID)
	if err != nil {
		respond.Error(writer, httpRequest, err)
		return
	}

	respond.OK(writer, user)
}

// changePassword handles POST /auth/change-password.
func (handler *Handler) changePassword(writer http.ResponseWriter, httpRequest *http.Request) {

	userID, err := request.RequiredUserID(httpRequest)
	if err != nil {
		respond.Error(writer, httpRequest, err)
		return
	}

	var body changePasswordRequest
	if err := request.DecodeJSON(httpRequest, &body); err != nil {
		respond.Error(writer, httpRequest, err)
		return
	}

	err = handler.service.ChangePassword(httpRequest.Context(), userID, body.CurrentPassword, body.NewPassword)
	if err != nil {
		respond.Error(writer, httpRequest, err)
		return
	}

	respond.NoContent(writer)
}

// newSessionResponse shapes a login session for the wire.
func newSessionResponse(session *LoginSession) sessionResponse {
	return sessionResponse{
		AccessToken:  session.AccessToken,
		RefreshToken: session.RefreshToken,
		TokenType:    "Bearer",
		ExpiresIn:    int64(AccessTokenTTL.Seconds()),
		User:         session.User,
	}
}
