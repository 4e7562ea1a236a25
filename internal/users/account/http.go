// Copyright (c) 2026 Polarnews Media. All rights reserved.
// Author: dev@polarnews.gl

package account

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nuukmedia/polarnews/internal/platform/middleware"
	request "github.com/nuukmedia/polarnews/internal/platform/request"
	"github.com/nuukmedia/polarnews/internal/platform/respond"
	"github.com/nuukmedia/polarnews/internal/platform/sec"
)

// # HTTP Handler

// Handler exposes the account administration endpoints. Every route is
// admin-only.
type Handler struct {
	service *Service
	logger  *slog.Logger
}

func NewHandler(service *Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes mounts the account routes on the given router.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Route("/accounts", func(group chi.Router) {
		group.Use(middleware.RequireRole(sec.RoleAdmin))

		group.Get("/", handler.list)
		group.Post("/", handler.create)
		group.Put("/{id}/role", handler.setRole)
		group.Delete("/{id}", handler.remove)
	})
}

// # Request Types

type createAccountRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type setRoleRequest struct {
	Role string `json:"role"`
}

// # Endpoints

// list handles GET /accounts.
func (handler *Handler) list(writer http.ResponseWriter, httpRequest *http.Request) {

	users, err := handler.service.ListAccounts(httpRequest.Context())
	if err != nil {
		respond.Error(writer, httpRequest, err)
		return
	}

	respond.OK(writer, users)
}

// create handles POST /accounts.
func (handler *Handler) create(writer http.ResponseWriter, httpRequest *http.Request) {

	var body createAccountRequest
	if err := request.DecodeJSON(httpRequest, &body); err != nil {
		respond.Error(writer, httpRequest, err)
		return
	}

	user, err := handler.service.CreateAccount(httpRequest.Context(), CreateInput{
		Username: body.Username,
		Email:    body.Email,
		Password: body.Password,
		Role:     body.Role,
	})
	if err != nil {
		respond.Error(writer, httpRequest, err)
		return
	}

	respond.Created(writer, user)
}

// setRole handles PUT /accounts/{id}/role.
func (handler *Handler) setRole(writer http.ResponseWriter, httpRequest *http.Request) {

	var body setRoleRequest
	if err := request.DecodeJSON(httpRequest, &body); err != nil {
		respond.Error(writer, httpRequest, err)
		return
	}

	err := handler.service.SetRole(httpRequest.Context(), request.Param(httpRequest, "id"), body.Role)
	if err != nil {
		respond.Error(writer, httpRequest, err)
		return
	}

	respond.NoContent(writer)
}

// remove handles DELETE /accounts/{id}.
func (handler *Handler) remove(writer http.ResponseWriter, httpRequest *http.Request) {

	err := handler.service.DeleteAccount(httpRequest.Context(), request.Param(httpRequest, "id"))
	if err != nil {
		respond.Error(writer, httpRequest, err)
		return
	}

	respond.NoContent(writer)
}
