// Package httpserver provides the HTTP server for the task API.
package httpserver

import (
	"net/http"

	"github.com/Nenzy16/task-management-system/internal/core/service"
	"github.com/Nenzy16/task-management-system/internal/server/httpserver/handler"
	"github.com/Nenzy16/task-management-system/internal/telemetry/logger"
	"github.com/Nenzy16/task-management-system/internal/telemetry/metric"
)

// RouterConfig holds configuration for the HTTP router.
type RouterConfig struct {
	// Credentials handles registration and login.
	Credentials *service.CredentialService

	// Tokens issues and verifies session tokens.
	Tokens *service.TokenService

	// Tasks handles owner-scoped task CRUD.
	Tasks *service.TaskService

	// Logger for request logging.
	Logger logger.Logger

	// Metrics records request metrics and serves /metrics.
	// Optional; when nil, no metrics are collected.
	Metrics *metric.Registry

	// CORSAllowedOrigins is the list of allowed CORS origins.
	// Empty or ["*"] allows all.
	CORSAllowedOrigins []string
}

// NewRouter creates and configures the HTTP router with all routes and
// middleware.
//
// Chain order: Recover -> CORS -> RequestID -> Metrics -> Audit -> handler.
func NewRouter(cfg *RouterConfig) http.Handler {
	h := handler.New(cfg.Credentials, cfg.Tokens, cfg.Tasks, cfg.Logger)

	middlewares := []Middleware{
		Recover(cfg.Logger),
		CORS(cfg.CORSAllowedOrigins),
		RequestID(),
	}
	if cfg.Metrics != nil {
		middlewares = append(middlewares, Metrics(cfg.Metrics))
	}
	middlewares = append(middlewares, Audit(cfg.Logger))

	mainHandler := Chain(h, middlewares...)

	mux := http.NewServeMux()

	// Metrics endpoint serves Prometheus text format, outside the API
	// envelope and audit chain.
	if cfg.Metrics != nil {
		mux.Handle("GET /metrics", Chain(
			cfg.Metrics.Handler(),
			Recover(cfg.Logger),
			RequestID(),
		))
	}

	// Everything else, including the catch-all 404, goes through the
	// API handler.
	mux.Handle("/", mainHandler)

	return mux
}
