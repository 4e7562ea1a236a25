// Copyright (c) 2026 Polarnews Media. All rights reserved.
// Author: dev@polarnews.gl

package feed

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/nuukmedia/polarnews/internal/news/article"
	"github.com/nuukmedia/polarnews/internal/platform/respond"
)

// # HTTP Handler

// Handler serves the sitemap documents. The routes live at the site root,
// outside the versioned API prefix, because crawlers expect them there.
type Handler struct {
	emitter *Emitter
	cache   *Cache
	logger  *slog.Logger
}

func NewHandler(emitter *Emitter, cache *Cache, logger *slog.Logger) *Handler {
	return &Handler{
		emitter: emitter,
		cache:   cache,
		logger:  logger,
	}
}

// RegisterRoutes mounts the feed routes on the given router.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/sitemap.xml", handler.sitemapEnglish)
	router.Get("/sitemap-DK.xml", handler.sitemapDanish)
	router.Get("/sitemap-KL.xml", handler.sitemapGreenlandic)
	router.Get("/sitemap_news.xml", handler.sitemapNews)
}

func (handler *Handler) sitemapEnglish(writer http.ResponseWriter, request *http.Request) {
	handler.serve(writer, request, CacheKeySitemapEN, func(ctx context.Context) ([]byte, error) {
		return handler.emitter.SitemapLang(ctx, article.LanguageEnglish)
	})
}

func (handler *Handler) sitemapDanish(writer http.ResponseWriter, request *http.Request) {
	handler.serve(writer, request, CacheKeySitemapDK, func(ctx context.Context) ([]byte, error) {
		return handler.emitter.SitemapLang(ctx, article.LanguageDanish)
	})
}

func (handler *Handler) sitemapGreenlandic(writer http.ResponseWriter, request *http.Request) {
	handler.serve(writer, request, CacheKeySitemapKL, func(ctx context.Context) ([]byte, error) {
		return handler.emitter.SitemapLang(ctx, article.LanguageGreenlandic)
	})
}

func (handler *Handler) sitemapNews(writer http.ResponseWriter, request *http.Request) {
	handler.serve(writer, request, CacheKeySitemapNews, func(ctx context.Context) ([]byte, error) {
		return handler.emitter.SitemapNews(ctx, time.Now())
	})
}

// serve answers from the cache when possible, otherwise renders the
// document, stores it, and serves it.
func (handler *Handler) serve(writer http.ResponseWriter, request *http.Request, cacheKey string, emit func(context.Context) ([]byte, error)) {

	ctx := request.Context()

	if body := handler.cache.Get(ctx, cacheKey); body != nil {
		respond.XML(writer, body)
		return
	}

	body, err := emit(ctx)
	if err != nil {
		respond.XMLError(writer, request, err)
		return
	}

	handler.cache.Set(ctx, cacheKey, body)
	respond.XML(writer, body)
}
