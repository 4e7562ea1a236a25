// Copyright (c) 2026 Polarnews Media. All rights reserved.
// Author: dev@polarnews.gl

package layout

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nuukmedia/polarnews/internal/news/article"
	"github.com/nuukmedia/polarnews/internal/platform/apperr"
	requestutil "github.com/nuukmedia/polarnews/internal/platform/request"
	"github.com/nuukmedia/polarnews/internal/platform/respond"
	"github.com/nuukmedia/polarnews/pkg/convert"
	"github.com/nuukmedia/polarnews/pkg/pagination"
)

// # Handler Implementation

// Handler exposes the render-order endpoints consumed by the template
// layer.
type Handler struct {
	service *Service
}

// NewHandler constructs a new layout [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes attaches the public placement endpoints.
func (handler *Handler) RegisterRoutes(api chi.Router) {
	api.Get("/home", handler.Home)
	api.Get("/sections/{section}", handler.Section)
}

/*
GET /api/v1/home?lang=da.

Description: Returns the home-page layout slots grouped into rows, ready
for slot-type dispatch in the renderer.
*/
func (handler *Handler) Home(writer http.ResponseWriter, request *http.Request) {
	lang := article.Language(request.URL.Query().Get("lang")).OrEnglish()

	rows, err := handler.service.HomeRows(request.Context(), lang)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, rows)
}

/*
GET /api/v1/sections/{section}?lang=da&per_row=2&page=1&limit=20.

Description: Returns a section page packed into grid rows, each article
annotated with its computed grid size.
*/
func (handler *Handler) Section(writer http.ResponseWriter, request *http.Request) {
	section := article.Section(requestutil.Param(request, "section"))
	lang := article.Language(request.URL.Query().Get("lang")).OrEnglish()

	valid := false
	for _, s := range article.Sections() {
		if s == section && s != article.SectionHome {
			valid = true
			break
		}
	}
	if !valid {
		respond.Error(writer, request, apperr.NotFound("Section"))
		return
	}

	perRow := convert.ToIntD(request.URL.Query().Get("per_row"), DefaultPerRow)
	paginationParams := pagination.FromRequest(request)

	rows, err := handler.service.SectionPage(request.Context(), section, lang, perRow,
		paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, rows)
}
