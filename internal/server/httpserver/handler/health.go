package handler

import (
	"net/http"
	"time"

	"github.com/Nenzy16/task-management-system/internal/infra/buildinfo"
)

// handleHealth handles GET /api/health.
func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, healthResponse{
		Status:    "OK",
		Message:   "Task Management API is running",
		Version:   buildinfo.Version,
		Uptime:    buildinfo.Uptime().Round(time.Second).String(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
