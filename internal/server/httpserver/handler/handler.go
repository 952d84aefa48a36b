// Package handler provides HTTP request handlers for the task API.
//
// This package implements the REST endpoints for account registration,
// login and owner-scoped task CRUD under the /api base path.
package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/Nenzy16/task-management-system/internal/core/domain"
	"github.com/Nenzy16/task-management-system/internal/core/service"
	"github.com/Nenzy16/task-management-system/internal/telemetry/logger"
)

// Handler routes API requests to the appropriate handlers.
type Handler struct {
	credentials *service.CredentialService
	tokens      *service.TokenService
	tasks       *service.TaskService
	logger      logger.Logger
	mux         *http.ServeMux
}

// New creates a new Handler with the given services.
func New(credentials *service.CredentialService, tokens *service.TokenService, tasks *service.TaskService, log logger.Logger) *Handler {
	h := &Handler{
		credentials: credentials,
		tokens:      tokens,
		tasks:       tasks,
		logger:      log,
		mux:         http.NewServeMux(),
	}

	h.registerRoutes()
	return h
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

// registerRoutes registers all HTTP routes.
func (h *Handler) registerRoutes() {
	// Auth endpoints (no token required)
	h.mux.HandleFunc("POST /api/auth/register", h.handleRegister)
	h.mux.HandleFunc("POST /api/auth/login", h.handleLogin)

	// Task endpoints (bearer token required)
	h.mux.HandleFunc("GET /api/tasks", h.authenticated(h.handleListTasks))
	h.mux.HandleFunc("POST /api/tasks", h.authenticated(h.handleCreateTask))
	h.mux.HandleFunc("GET /api/tasks/{id}", h.authenticated(h.handleGetTask))
	h.mux.HandleFunc("PUT /api/tasks/{id}", h.authenticated(h.handleReplaceTask))
	h.mux.HandleFunc("PATCH /api/tasks/{id}", h.authenticated(h.handlePatchTask))
	h.mux.HandleFunc("DELETE /api/tasks/{id}", h.authenticated(h.handleDeleteTask))

	// Health endpoint (no token required)
	h.mux.HandleFunc("GET /api/health", h.handleHealth)

	// Everything else, including wrong methods on unknown paths
	h.mux.HandleFunc("/", h.handleNotFound)
}

// handleNotFound answers any unrouted request.
func (h *Handler) handleNotFound(w http.ResponseWriter, r *http.Request) {
	h.writeError(w, http.StatusNotFound, "", "Endpoint not found")
}

// writeJSON writes a JSON response body.
func (h *Handler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("failed to encode response", "error", err)
	}
}

// writeError writes an error response. The machine-readable code goes
// into the X-Error-Code header; the body carries only the message.
func (h *Handler) writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	if code != "" {
		w.Header().Set("X-Error-Code", code)
	}
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(errorResponse{Message: message})
}

// writeServiceError converts service errors to HTTP responses.
// Domain error messages are safe for clients; anything else collapses
// into a generic 500.
func (h *Handler) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var de *domain.DomainError
	if errors.As(err, &de) {
		h.writeError(w, errorCodeToHTTPStatus(de.Code), de.Code, de.Message)
		return
	}

	logger.L(r.Context()).Error("internal error", "error", err)
	h.writeError(w, http.StatusInternalServerError, "TMS-SYS-5000", "Internal server error")
}

// errorCodeToHTTPStatus maps error codes to HTTP status codes.
// Duplicate email maps to 400, not 409, matching the public API contract.
func errorCodeToHTTPStatus(code string) int {
	switch {
	case strings.HasSuffix(code, "-4000"), strings.HasSuffix(code, "-4090"):
		return http.StatusBadRequest
	case strings.HasSuffix(code, "-4010"), strings.HasSuffix(code, "-4011"):
		return http.StatusUnauthorized
	case strings.HasSuffix(code, "-4030"), strings.HasSuffix(code, "-4031"):
		return http.StatusForbidden
	case strings.HasSuffix(code, "-4040"):
		return http.StatusNotFound
	case strings.HasPrefix(code, "TMS-SYS-5"):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// decodeBody decodes a JSON request body into target.
func decodeBody(r *http.Request, target any) error {
	return json.NewDecoder(r.Body).Decode(target)
}
