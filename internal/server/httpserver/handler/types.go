package handler

import "github.com/Nenzy16/task-management-system/internal/core/domain"

// userView is the safe projection of a user returned by the API.
// The password hash and registration timestamp stay internal.
type userView struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func newUserView(u *domain.User) userView {
	return userView{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
	}
}

// registerRequest is the request body for POST /api/auth/register.
type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// registerResponse is the response body for POST /api/auth/register.
type registerResponse struct {
	Message string   `json:"message"`
	User    userView `json:"user"`
}

// loginRequest is the request body for POST /api/auth/login.
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// loginResponse is the response body for POST /api/auth/login.
type loginResponse struct {
	Message string   `json:"message"`
	Token   string   `json:"token"`
	User    userView `json:"user"`
}

// taskWriteRequest is the request body for POST /api/tasks and
// PUT /api/tasks/{id}. Omitted fields take their defaults.
type taskWriteRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	Completed   bool   `json:"completed"`
}

// taskPatchRequest is the request body for PATCH /api/tasks/{id}.
// Pointer fields distinguish absent from zero-valued.
type taskPatchRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Priority    *string `json:"priority"`
	Completed   *bool   `json:"completed"`
}

// taskResponse is the response body for single-task endpoints.
type taskResponse struct {
	Message string       `json:"message"`
	Data    *domain.Task `json:"data"`
}

// taskListResponse is the response body for GET /api/tasks.
type taskListResponse struct {
	Message string         `json:"message"`
	Data    []*domain.Task `json:"data"`
	Count   int            `json:"count"`
}

// healthResponse is the response body for GET /api/health.
type healthResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Version   string `json:"version"`
	Uptime    string `json:"uptime"`
	Timestamp string `json:"timestamp"`
}

// errorResponse is the body of every error response.
type errorResponse struct {
	Message string `json:"message"`
}
