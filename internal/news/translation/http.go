// Copyright (c) 2026 Polarnews Media. All rights reserved.
// Author: dev@polarnews.gl

package translation

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nuukmedia/polarnews/internal/news/article"
	"github.com/nuukmedia/polarnews/internal/platform/middleware"
	requestutil "github.com/nuukmedia/polarnews/internal/platform/request"
	"github.com/nuukmedia/polarnews/internal/platform/respond"
	"github.com/nuukmedia/polarnews/internal/platform/sec"
	"github.com/nuukmedia/polarnews/pkg/convert"
)

// # Handler Implementation

// Handler implements the HTTP layer for translation group management.
type Handler struct {
	service *Service
}

// NewHandler constructs a new translation [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes attaches translation endpoints to the root API router.
func (handler *Handler) RegisterRoutes(api chi.Router) {
	// Renderer-facing reads
	api.Get("/articles/{id}/translations", handler.ListTranslations)
	api.Get("/articles/{id}/alternates", handler.ListAlternates)

	// Back-office graph mutations
	api.Group(func(editor chi.Router) {
		editor.Use(middleware.RequireRole(sec.RoleEditor))
		editor.Post("/articles/{id}/translations", handler.AttachTranslation)
		editor.Put("/articles/{id}/canonical", handler.LinkCanonical)
		editor.Delete("/articles/{id}/canonical", handler.DetachTranslation)
	})
}

// # Reads

/*
GET /api/v1/articles/{id}/translations.

Description: Returns the full translation set of an article keyed by
language.
*/
func (handler *Handler) ListTranslations(writer http.ResponseWriter, request *http.Request) {
	a, err := handler.loadArticle(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	resolved, err := handler.service.Resolve(request.Context(), a)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, resolved)
}

/*
GET /api/v1/articles/{id}/alternates.

Description: Returns the hreflang alternate list for an article, one entry
per translation with a publisher URL.
*/
func (handler *Handler) ListAlternates(writer http.ResponseWriter, request *http.Request) {
	a, err := handler.loadArticle(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	alternates, err := handler.service.Alternates(request.Context(), a)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, alternates)
}

// # Mutations

// attachTranslationRequest defines the inbound JSON schema for a new
// translation. The path id is the canonical article.
type attachTranslationRequest struct {
	Language      article.Language `json:"language"`
	Title         string           `json:"title"`
	Section       article.Section  `json:"section"`
	PublishedURL  *string          `json:"published_url,omitempty"`
	PublishedDate string           `json:"published_date,omitempty"`
	IsTemp        bool             `json:"is_temp"`
}

/*
POST /api/v1/articles/{id}/translations.

Description: Inserts a new translation into the group rooted at the path
article. Fails with 409 when the language is already present and 422 when
the target is not a group root.
*/
func (handler *Handler) AttachTranslation(writer http.ResponseWriter, request *http.Request) {
	canonicalID := convert.ToInt(requestutil.Param(request, "id"))

	var input attachTranslationRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	newArticle := &article.Article{
		Language:      input.Language,
		Title:         input.Title,
		Section:       input.Section,
		PublishedURL:  input.PublishedURL,
		PublishedDate: article.ParsePublishedDate(input.PublishedDate),
		IsTemp:        input.IsTemp,
	}

	if err := handler.service.Attach(request.Context(), newArticle, int64(canonicalID)); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, newArticle)
}

// linkCanonicalRequest carries the target group root for an existing record.
type linkCanonicalRequest struct {
	CanonicalID int64 `json:"canonical_id"`
}

/*
PUT /api/v1/articles/{id}/canonical.

Description: Links an already-stored article into the translation group
rooted at the supplied canonical id.
*/
func (handler *Handler) LinkCanonical(writer http.ResponseWriter, request *http.Request) {
	articleID := convert.ToInt(requestutil.Param(request, "id"))

	var input linkCanonicalRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Link(request.Context(), int64(articleID), input.CanonicalID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]string{"message": "Canonical link updated"})
}

/*
DELETE /api/v1/articles/{id}/canonical.

Description: Detaches an article from its translation group, promoting the
oldest surviving sibling when the article was the group root.
*/
func (handler *Handler) DetachTranslation(writer http.ResponseWriter, request *http.Request) {
	articleID := convert.ToInt(requestutil.Param(request, "id"))

	if err := handler.service.Detach(request.Context(), int64(articleID)); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

// loadArticle fetches the path article for read endpoints.
func (handler *Handler) loadArticle(request *http.Request) (*article.Article, error) {
	id := convert.ToInt(requestutil.Param(request, "id"))
	return handler.service.repo.GetArticle(request.Context(), int64(id))
}
