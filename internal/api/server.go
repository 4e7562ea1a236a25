// Copyright (c) 2026 Polarnews Media. All rights reserved.
// Author: dev@polarnews.gl

/*
Package api wires together the HTTP router, middleware chain, and all
domain handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It acts as the central composition root for the HTTP transport framework (chi router).
  - Only this package and cmd/api are allowed to import net/http server primitives.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/nuukmedia/polarnews/internal/news/article"
	"github.com/nuukmedia/polarnews/internal/news/feed"
	"github.com/nuukmedia/polarnews/internal/news/layout"
	"github.com/nuukmedia/polarnews/internal/news/translation"
	"github.com/nuukmedia/polarnews/internal/platform/config"
	"github.com/nuukmedia/polarnews/internal/platform/constants"
	"github.com/nuukmedia/polarnews/internal/platform/middleware"
	"github.com/nuukmedia/polarnews/internal/users/account"
	"github.com/nuukmedia/polarnews/internal/users/auth"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
//
// It is constructed once in main.go with all dependencies injected.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// # Handler Registry

// Handlers groups all domain-specific HTTP handler sets.
//
// # Usage
//
// New domains add a field here — no other change to server.go is required.
type Handlers struct {
	// Liveness is the /health handler — always returns 200 if process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler — returns 200 when all deps are healthy.
	Readiness http.HandlerFunc

	// Feed serves the sitemap documents at the site root.
	Feed *feed.Handler

	// Article handles article reads plus the editorial CRUD surface.
	Article *article.Handler

	// Translation manages the cross-language article graph.
	Translation *translation.Handler

	// Layout serves the home page and section page compositions.
	Layout *layout.Handler

	// Auth handles back-office authentication routes.
	Auth *auth.Handler

	// Account handles back-office account administration.
	Account *account.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
func NewServer(rootContext context.Context, cfg *config.Config, log *slog.Logger, verifier middleware.TokenVerifier, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.RateLimit(rootContext))
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.Authenticate(verifier))
	r.Use(middleware.CORS(cfg))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	// Unauthenticated health probes for container orchestration.
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	// # Feed Endpoints
	// Sitemaps live at the site root, not under the API prefix, because
	// search engine crawlers fetch fixed well-known paths.
	h.Feed.RegisterRoutes(r)

	// # Application API
	// Domain-specific route groups mounted under versioned prefix.
	r.Route("/api/v1", func(api chi.Router) {
		h.Article.RegisterRoutes(api)
		h.Translation.RegisterRoutes(api)
		h.Layout.RegisterRoutes(api)
		h.Auth.RegisterRoutes(api)
		h.Account.RegisterRoutes(api)
	})

	return &Server{
		router: r,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           r,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	shutdownContext, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(shutdownContext)
}
