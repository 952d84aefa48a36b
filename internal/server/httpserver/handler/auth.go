package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/Nenzy16/task-management-system/internal/core/domain"
	"github.com/Nenzy16/task-management-system/internal/core/service"
)

// identityKey is the context key for the authenticated identity.
type identityKey struct{}

// identity is the caller established by a verified bearer token.
type identity struct {
	UserID int64
	Email  string
}

// identityFromContext returns the authenticated identity, if any.
func identityFromContext(ctx context.Context) (identity, bool) {
	id, ok := ctx.Value(identityKey{}).(identity)
	return id, ok
}

// authenticated wraps a handler with bearer-token authentication.
//
// A missing Authorization header or a non-Bearer scheme is 401; a token
// that fails verification is 403. The verified identity is placed on
// the request context for the wrapped handler.
func (h *Handler) authenticated(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			h.writeError(w, http.StatusUnauthorized, domain.ErrTokenRequired.Code, domain.ErrTokenRequired.Message)
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			h.writeError(w, http.StatusUnauthorized, domain.ErrTokenRequired.Code, domain.ErrTokenRequired.Message)
			return
		}

		claims, err := h.tokens.Verify(tokenString)
		if err != nil {
			h.writeServiceError(w, r, err)
			return
		}

		ctx := context.WithValue(r.Context(), identityKey{}, identity{
			UserID: claims.UserID,
			Email:  claims.Email,
		})
		next(w, r.WithContext(ctx))
	}
}

// handleRegister handles POST /api/auth/register.
func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeBody(r, &req); err != nil {
		h.writeError(w, http.StatusBadRequest, domain.ErrValidation.Code, "Invalid request body")
		return
	}

	user, err := h.credentials.Register(r.Context(), &service.RegisterRequest{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, registerResponse{
		Message: "User registered successfully",
		User:    newUserView(user),
	})
}

// handleLogin handles POST /api/auth/login.
func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeBody(r, &req); err != nil {
		h.writeError(w, http.StatusBadRequest, domain.ErrValidation.Code, "Invalid request body")
		return
	}

	// Presence check comes before any credential work.
	if req.Email == "" || req.Password == "" {
		h.writeError(w, http.StatusBadRequest, domain.ErrValidation.Code, "Email and password are required")
		return
	}

	user, err := h.credentials.Verify(r.Context(), req.Email, req.Password)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	token, err := h.tokens.Issue(user)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, loginResponse{
		Message: "Login successful",
		Token:   token,
		User:    newUserView(user),
	})
}
