package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abdulaziz-cybers/ToDoKirano/internal/api/shared"
	"github.com/Abdulaziz-cybers/ToDoKirano/internal/service/auth"
	"github.com/Abdulaziz-cybers/ToDoKirano/internal/store"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid token", auth.ErrInvalidToken, http.StatusUnauthorized},
		{"expired token", auth.ErrExpiredToken, http.StatusUnauthorized},
		{"invalid refresh token", auth.ErrInvalidRefreshToken, http.StatusUnauthorized},
		{"wrong token type", auth.ErrWrongTokenType, http.StatusUnauthorized},
		{"task not found", store.ErrTaskNotFound, http.StatusNotFound},
		{"user not found", store.ErrUserNotFound, http.StatusNotFound},
		{"email exists", store.ErrEmailExists, http.StatusConflict},
		{"wrapped not found", fmt.Errorf("lookup: %w", store.ErrTaskNotFound), http.StatusNotFound},
		{"unknown error", errors.New("disk on fire"), http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, MapErrorToStatusCode(tc.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil error", nil, "An unexpected error occurred"},
		{"task not found", store.ErrTaskNotFound, "Task not found"},
		{"user not found", store.ErrUserNotFound, "User not found"},
		{"email exists", store.ErrEmailExists, "Email already exists"},
		{"expired token", auth.ErrExpiredToken, "Invalid token"},
		{"expired refresh token", auth.ErrExpiredRefreshToken, "Invalid refresh token"},
		{
			"internal detail never leaks",
			errors.New("pq: connection to 10.0.0.5 failed"),
			"An unexpected error occurred",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, GetSafeErrorMessage(tc.err))
		})
	}
}

func TestValidationFields(t *testing.T) {
	t.Parallel()

	t.Run("keys use json field names", func(t *testing.T) {
		t.Parallel()

		err := shared.Validate.Struct(CreateTaskRequest{Status: "archived"})
		require.Error(t, err)

		fields := validationFields(err)
		assert.Equal(t, []string{"The title field is required."}, fields["title"])
		assert.Equal(t, []string{"The selected status is invalid."}, fields["status"])
	})

	t.Run("non-validator error collapses to generic entry", func(t *testing.T) {
		t.Parallel()

		fields := validationFields(errors.New("boom"))
		assert.Equal(t, map[string][]string{"request": {"invalid request"}}, fields)
	})
}
