package api

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/Abdulaziz-cybers/ToDoKirano/internal/domain"
)

// Common request/response structures

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=12,max=72"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// AuthResponse defines the successful response for authentication endpoints.
type AuthResponse struct {
	// UserID is the unique identifier for the authenticated user
	UserID uuid.UUID `json:"user_id"`

	// AccessToken is the JWT token used for API authorization
	AccessToken string `json:"token"`

	// RefreshToken is the JWT token used to obtain new access tokens
	RefreshToken string `json:"refresh_token,omitempty"`

	// ExpiresAt is the ISO 8601 timestamp when the access token expires
	ExpiresAt string `json:"expires_at,omitempty"`
}

// RefreshTokenRequest defines the payload for the token refresh endpoint.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// RefreshTokenResponse defines the successful response for the token refresh endpoint.
type RefreshTokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresAt    string `json:"expires_at"`
}

// CreateTaskRequest defines the payload for creating a task.
// The owner is never part of the payload; it comes from the authenticated
// request context.
type CreateTaskRequest struct {
	Title       string  `json:"title"       validate:"required,max=255"`
	Description *string `json:"description" validate:"omitempty"`
	Status      string  `json:"status"      validate:"required,oneof=pending in_progress completed"`
	DueDate     *string `json:"due_date"    validate:"omitempty"`
}

// UpdateTaskRequest defines the payload for a partial task update.
// Every field is optional; fields that are present must satisfy the same
// constraints as on creation. Absent fields leave the stored value
// untouched, while an explicit null clears the nullable fields
// (description, due_date). Plain pointer decoding cannot tell null from
// absent, so UnmarshalJSON records the distinction in the Clear flags.
type UpdateTaskRequest struct {
	Title       *string `json:"title"       validate:"omitempty,min=1,max=255"`
	Description *string `json:"description" validate:"omitempty"`
	Status      *string `json:"status"      validate:"omitempty,oneof=pending in_progress completed"`
	DueDate     *string `json:"due_date"    validate:"omitempty"`

	ClearDescription bool `json:"-" validate:"-"`
	ClearDueDate     bool `json:"-" validate:"-"`
}

// UnmarshalJSON decodes the update payload and flags nullable fields that
// were set to an explicit JSON null.
func (r *UpdateTaskRequest) UnmarshalJSON(data []byte) error {
	type plain UpdateTaskRequest
	var fields plain
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*r = UpdateTaskRequest(fields)
	r.ClearDescription = isJSONNull(raw["description"])
	r.ClearDueDate = isJSONNull(raw["due_date"])
	return nil
}

// isJSONNull reports whether a raw message holds an explicit null. A missing
// key yields a nil message, which is not null.
func isJSONNull(raw json.RawMessage) bool {
	return string(bytes.TrimSpace(raw)) == "null"
}

// TaskResponse represents the response data for a task.
// Description and DueDate serialize as null when the task has none.
type TaskResponse struct {
	ID          string     `json:"id"`
	UserID      string     `json:"user_id"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	Status      string     `json:"status"`
	DueDate     *time.Time `json:"due_date"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// MessageResponse is a simple confirmation message body.
type MessageResponse struct {
	Message string `json:"message"`
}

// taskToResponse converts a domain.Task to a TaskResponse
func taskToResponse(task *domain.Task) TaskResponse {
	return TaskResponse{
		ID:          task.ID.String(),
		UserID:      task.UserID.String(),
		Title:       task.Title,
		Description: task.Description,
		Status:      string(task.Status),
		DueDate:     task.DueDate,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}

// dueDateLayouts are the accepted input formats for due_date. A date-only
// value is normalized to midnight UTC so the stored representation is
// always a structured timestamp.
var dueDateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
}

// parseDueDate parses a due_date input string into a UTC timestamp.
func parseDueDate(value string) (time.Time, error) {
	var firstErr error
	for _, layout := range dueDateLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t.UTC(), nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return time.Time{}, firstErr
}
