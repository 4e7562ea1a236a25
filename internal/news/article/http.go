// Copyright (c) 2026 Polarnews Media. All rights reserved.
// Author: dev@polarnews.gl

package article

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/nuukmedia/polarnews/internal/platform/apperr"
	"github.com/nuukmedia/polarnews/internal/platform/middleware"
	request "github.com/nuukmedia/polarnews/internal/platform/request"
	"github.com/nuukmedia/polarnews/internal/platform/respond"
	"github.com/nuukmedia/polarnews/internal/platform/sec"
)

// # HTTP Handler

// FeedInvalidator drops cached feed documents after a mutation. The feed
// package provides the implementation; the indirection avoids a dependency
// cycle.
type FeedInvalidator interface {
	Invalidate(ctx context.Context)
}

// Handler exposes article read endpoints publicly and the CRUD surface to
// editors.
type Handler struct {
	service *Service
	feeds   FeedInvalidator
	logger  *slog.Logger
}

func NewHandler(service *Service, feeds FeedInvalidator, logger *slog.Logger) *Handler {
	return &Handler{service: service, feeds: feeds, logger: logger}
}

// RegisterRoutes attaches the article endpoints to the root API router.
func (handler *Handler) RegisterRoutes(api chi.Router) {

	api.Get("/articles/{id}", handler.get)
	api.Get("/articles/detail", handler.detail)

	api.Group(func(editors chi.Router) {
		editors.Use(middleware.RequireRole(sec.RoleEditor))

		editors.Post("/articles", handler.create)
		editors.Put("/articles/{id}", handler.update)
		editors.Delete("/articles/{id}", handler.remove)
		editors.Put("/articles/{id}/detail", handler.saveDetail)
	})
}

// # Endpoints

// get handles GET /articles/{id}.
func (handler *Handler) get(writer http.ResponseWriter, httpRequest *http.Request) {

	id, err := pathID(httpRequest)
	if err != nil {
		respond.Error(writer, httpRequest, err)
		return
	}

	found, err := handler.service.GetArticle(httpRequest.Context(), id)
	if err != nil {
		respond.Error(writer, httpRequest, err)
		return
	}

	respond.OK(writer, found)
}

// detail handles GET /articles/detail?url=&lang=.
//
// The body is keyed by published URL plus language because every language
// of a translation group shares the URL.
func (handler *Handler) detail(writer http.ResponseWriter, httpRequest *http.Request) {

	publishedURL := httpRequest.URL.Query().Get("url")
	if publishedURL == "" {
		respond.Error(writer, httpRequest, apperr.ValidationError("Query parameter 'url' is required"))
		return
	}

	lang := Language(httpRequest.URL.Query().Get("lang")).OrEnglish()

	found, err := handler.service.GetDetail(httpRequest.Context(), publishedURL, lang)
	if err != nil {
		respond.Error(writer, httpRequest, err)
		return
	}

	respond.OK(writer, found)
}

// create handles POST /articles.
func (handler *Handler) create(writer http.ResponseWriter, httpRequest *http.Request) {

	var body Article
	if err := request.DecodeJSON(httpRequest, &body); err != nil {
		respond.Error(writer, httpRequest, err)
		return
	}

	if err := handler.service.CreateArticle(httpRequest.Context(), &body); err != nil {
		respond.Error(writer, httpRequest, err)
		return
	}

	handler.feeds.Invalidate(httpRequest.Context())
	respond.Created(writer, body)
}

// update handles PUT /articles/{id}.
func (handler *Handler) update(writer http.ResponseWriter, httpRequest *http.Request) {

	id, err := pathID(httpRequest)
	if err != nil {
		respond.Error(writer, httpRequest, err)
		return
	}

	var body Article
	if err := request.DecodeJSON(httpRequest, &body); err != nil {
		respond.Error(writer, httpRequest, err)
		return
	}
	body.ID = id

	if err := handler.service.UpdateArticle(httpRequest.Context(), &body); err != nil {
		respond.Error(writer, httpRequest, err)
		return
	}

	handler.feeds.Invalidate(httpRequest.Context())
	respond.OK(writer, body)
}

// remove handles DELETE /articles/{id}.
func (handler *Handler) remove(writer http.ResponseWriter, httpRequest *http.Request) {

	id, err := pathID(httpRequest)
	if err != nil {
		respond.Error(writer, httpRequest, err)
		return
	}

	if err := handler.service.DeleteArticle(httpRequest.Context(), id); err != nil {
		respond.Error(writer, httpRequest, err)
		return
	}

	handler.feeds.Invalidate(httpRequest.Context())
	respond.NoContent(writer)
}

// saveDetail handles PUT /articles/{id}/detail.
func (handler *Handler) saveDetail(writer http.ResponseWriter, httpRequest *http.Request) {

	if _, err := pathID(httpRequest); err != nil {
		respond.Error(writer, httpRequest, err)
		return
	}

	var body Detail
	if err := request.DecodeJSON(httpRequest, &body); err != nil {
		respond.Error(writer, httpRequest, err)
		return
	}

	if err := handler.service.SaveDetail(httpRequest.Context(), &body); err != nil {
		respond.Error(writer, httpRequest, err)
		return
	}

	respond.OK(writer, body)
}

// pathID parses the numeric {id} path parameter.
func pathID(httpRequest *http.Request) (int64, error) {

	raw := request.Param(httpRequest, "id")

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperr.ValidationError("Path parameter 'id' must be a positive integer")
	}

	return id, nil
}
