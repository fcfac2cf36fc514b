// Copyright (c) 2026 Fleetra. All rights reserved.
// Author: quang.phan.hcm@gmail.com

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

	"github.com/quangphan/fleetra/internal/fleet/dashboard"
	"github.com/quangphan/fleetra/internal/fleet/driver"
	"github.com/quangphan/fleetra/internal/fleet/team"
	"github.com/quangphan/fleetra/internal/fleet/vehicle"
	"github.com/quangphan/fleetra/internal/platform/config"
	"github.com/quangphan/fleetra/internal/platform/constants"
	"github.com/quangphan/fleetra/internal/platform/middleware"
	"github.com/quangphan/fleetra/internal/users/auth"
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
// New domains add a field here; no other change to server.go is required.
type Handlers struct {
	// Liveness is the /health handler. Always returns 200 if the process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler. Returns 200 when all deps are healthy.
	Readiness http.HandlerFunc

	// Auth handles the session lifecycle (register, login, logout, me).
	Auth *auth.Handler

	// Vehicle manages the owner's trucks.
	Vehicle *vehicle.Handler

	// Driver manages driver records and assignments.
	Driver *driver.Handler

	// Team manages dispatch teams.
	Team *team.Handler

	// Dashboard serves the aggregated landing-page data.
	Dashboard *dashboard.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
//
// The session guard sits in the global chain: every route that is not on its
// public allow-list (which includes the whole /auth surface and the health
// probes) requires a valid session cookie and redirects to /login otherwise.
func NewServer(context context.Context, cfg *config.Config, log *slog.Logger, verifier middleware.TokenVerifier, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.RateLimit(context))
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.CORS(cfg))
	r.Use(middleware.SessionGuard(verifier))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	// Unauthenticated health probes for container orchestration.
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	// # Session Lifecycle
	// Public by allow-list; the handlers verify cookies themselves.
	r.Mount("/auth", h.Auth.Routes())

	// # Application API
	// Everything under /api sits behind the session guard.
	r.Route("/api", func(api chi.Router) {
		api.Route("/vehicles", h.Vehicle.RegisterRoutes)
		api.Route("/drivers", h.Driver.RegisterRoutes)
		api.Route("/teams", h.Team.RegisterRoutes)
		api.Route("/dashboard", h.Dashboard.RegisterRoutes)
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
	context, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(context)
}
