package handler

import (
	"net/http"
	"strconv"

	"github.com/Nenzy16/task-management-system/internal/core/domain"
	"github.com/Nenzy16/task-management-system/internal/core/service"
)

// parseTaskID parses the {id} path segment. A non-integer id is
// indistinguishable from an absent task.
func parseTaskID(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.PathValue("id"), 10, 64)
}

// handleListTasks handles GET /api/tasks.
func (h *Handler) handleListTasks(w http.ResponseWriter, r *http.Request) {
	id, _ := identityFromContext(r.Context())

	tasks, err := h.tasks.List(r.Context(), id.UserID)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, taskListResponse{
		Message: "Tasks retrieved successfully",
		Data:    tasks,
		Count:   len(tasks),
	})
}

// handleGetTask handles GET /api/tasks/{id}.
func (h *Handler) handleGetTask(w http.ResponseWriter, r *http.Request) {
	id, _ := identityFromContext(r.Context())

	taskID, err := parseTaskID(r)
	if err != nil {
		h.writeServiceError(w, r, domain.ErrTaskNotFound)
		return
	}

	task, err := h.tasks.Get(r.Context(), id.UserID, taskID)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, taskResponse{
		Message: "Task retrieved successfully",
		Data:    task,
	})
}

// handleCreateTask handles POST /api/tasks.
func (h *Handler) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	id, _ := identityFromContext(r.Context())

	var req taskWriteRequest
	if err := decodeBody(r, &req); err != nil {
		h.writeError(w, http.StatusBadRequest, domain.ErrValidation.Code, "Invalid request body")
		return
	}

	task, err := h.tasks.Create(r.Context(), id.UserID, &service.CreateTaskRequest{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
	})
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, taskResponse{
		Message: "Task created successfully",
		Data:    task,
	})
}

// handleReplaceTask handles PUT /api/tasks/{id}.
func (h *Handler) handleReplaceTask(w http.ResponseWriter, r *http.Request) {
	id, _ := identityFromContext(r.Context())

	taskID, err := parseTaskID(r)
	if err != nil {
		h.writeServiceError(w, r, domain.ErrTaskNotFound)
		return
	}

	var req taskWriteRequest
	if err := decodeBody(r, &req); err != nil {
		h.writeError(w, http.StatusBadRequest, domain.ErrValidation.Code, "Invalid request body")
		return
	}

	task, err := h.tasks.Replace(r.Context(), id.UserID, taskID, &service.ReplaceTaskRequest{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		Completed:   req.Completed,
	})
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, taskResponse{
		Message: "Task updated successfully",
		Data:    task,
	})
}

// handlePatchTask handles PATCH /api/tasks/{id}.
func (h *Handler) handlePatchTask(w http.ResponseWriter, r *http.Request) {
	id, _ := identityFromContext(r.Context())

	taskID, err := parseTaskID(r)
	if err != nil {
		h.writeServiceError(w, r, domain.ErrTaskNotFound)
		return
	}

	var req taskPatchRequest
	if err := decodeBody(r, &req); err != nil {
		h.writeError(w, http.StatusBadRequest, domain.ErrValidation.Code, "Invalid request body")
		return
	}

	task, err := h.tasks.Patch(r.Context(), id.UserID, taskID, &service.TaskPatch{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		Completed:   req.Completed,
	})
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, taskResponse{
		Message: "Task updated successfully",
		Data:    task,
	})
}

// handleDeleteTask handles DELETE /api/tasks/{id}.
func (h *Handler) handleDeleteTask(w http.ResponseWriter, r *http.Request) {
	id, _ := identityFromContext(r.Context())

	taskID, err := parseTaskID(r)
	if err != nil {
		h.writeServiceError(w, r, domain.ErrTaskNotFound)
		return
	}

	if err := h.tasks.Delete(r.Context(), id.UserID, taskID); err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
