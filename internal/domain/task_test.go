package domain_test

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abdulaziz-cybers/ToDoKirano/internal/domain"
)

func strPtr(s string) *string { return &s }

func TestNewTask(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	dueDate := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)

	t.Run("creates valid task", func(t *testing.T) {
		t.Parallel()

		task, err := domain.NewTask(
			userID,
			"Write quarterly report",
			strPtr("Q3 numbers"),
			domain.TaskStatusPending,
			&dueDate,
		)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, task.ID)
		assert.Equal(t, userID, task.UserID)
		assert.Equal(t, "Write quarterly report", task.Title)
		require.NotNil(t, task.Description)
		assert.Equal(t, "Q3 numbers", *task.Description)
		assert.Equal(t, domain.TaskStatusPending, task.Status)
		require.NotNil(t, task.DueDate)
		assert.Equal(t, dueDate, *task.DueDate)
		assert.False(t, task.CreatedAt.IsZero())
		assert.Equal(t, task.CreatedAt, task.UpdatedAt)
	})

	t.Run("optional fields may be absent", func(t *testing.T) {
		t.Parallel()

		task, err := domain.NewTask(userID, "Buy milk", nil, domain.TaskStatusInProgress, nil)
		require.NoError(t, err)

		assert.Nil(t, task.Description)
		assert.Nil(t, task.DueDate)
	})

	t.Run("title length counts characters not bytes", func(t *testing.T) {
		t.Parallel()

		// 255 two-byte characters is a valid title even though it is 510
		// bytes long.
		title := strings.Repeat("é", domain.MaxTaskTitleLength)
		task, err := domain.NewTask(userID, title, nil, domain.TaskStatusPending, nil)
		require.NoError(t, err)
		assert.Equal(t, title, task.Title)

		_, err = domain.NewTask(userID, title+"é", nil, domain.TaskStatusPending, nil)
		assert.ErrorIs(t, err, domain.ErrTaskTitleTooLong)
	})

	tests := []struct {
		name    string
		userID  uuid.UUID
		title   string
		status  domain.TaskStatus
		wantErr error
	}{
		{
			name:    "empty owner",
			userID:  uuid.Nil,
			title:   "Buy milk",
			status:  domain.TaskStatusPending,
			wantErr: domain.ErrTaskUserIDEmpty,
		},
		{
			name:    "empty title",
			userID:  userID,
			title:   "",
			status:  domain.TaskStatusPending,
			wantErr: domain.ErrTaskTitleEmpty,
		},
		{
			name:    "title too long",
			userID:  userID,
			title:   strings.Repeat("x", domain.MaxTaskTitleLength+1),
			status:  domain.TaskStatusPending,
			wantErr: domain.ErrTaskTitleTooLong,
		},
		{
			name:    "status outside enumerated set",
			userID:  userID,
			title:   "Buy milk",
			status:  domain.TaskStatus("archived"),
			wantErr: domain.ErrInvalidTaskStatus,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			task, err := domain.NewTask(tc.userID, tc.title, nil, tc.status, nil)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Nil(t, task)
		})
	}
}

func TestTaskApply(t *testing.T) {
	t.Parallel()

	newTask := func(t *testing.T) *domain.Task {
		t.Helper()
		task, err := domain.NewTask(
			uuid.New(),
			"Original title",
			strPtr("Original description"),
			domain.TaskStatusPending,
			nil,
		)
		require.NoError(t, err)
		return task
	}

	t.Run("applies only supplied fields", func(t *testing.T) {
		t.Parallel()

		task := newTask(t)
		status := domain.TaskStatusCompleted

		err := task.Apply(domain.TaskUpdate{Status: &status})
		require.NoError(t, err)

		assert.Equal(t, domain.TaskStatusCompleted, task.Status)
		assert.Equal(t, "Original title", task.Title)
		require.NotNil(t, task.Description)
		assert.Equal(t, "Original description", *task.Description)
		assert.Nil(t, task.DueDate)
	})

	t.Run("bumps updated_at", func(t *testing.T) {
		t.Parallel()

		task := newTask(t)
		before := task.UpdatedAt
		status := domain.TaskStatusInProgress

		// UpdatedAt has nanosecond precision; a short sleep guarantees a
		// strictly later timestamp on fast machines.
		time.Sleep(time.Millisecond)
		require.NoError(t, task.Apply(domain.TaskUpdate{Status: &status}))

		assert.True(t, task.UpdatedAt.After(before))
	})

	t.Run("invalid update leaves task unchanged", func(t *testing.T) {
		t.Parallel()

		task := newTask(t)
		before := *task
		badStatus := domain.TaskStatus("archived")

		err := task.Apply(domain.TaskUpdate{
			Title:  strPtr("New title"),
			Status: &badStatus,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidTaskStatus)
		assert.Equal(t, before, *task)
	})

	t.Run("clear flags empty the nullable fields", func(t *testing.T) {
		t.Parallel()

		task := newTask(t)
		due := time.Date(2026, time.October, 1, 0, 0, 0, 0, time.UTC)
		require.NoError(t, task.Apply(domain.TaskUpdate{DueDate: &due}))
		require.NotNil(t, task.DueDate)

		err := task.Apply(domain.TaskUpdate{
			ClearDescription: true,
			ClearDueDate:     true,
		})
		require.NoError(t, err)

		assert.Nil(t, task.Description)
		assert.Nil(t, task.DueDate)
		assert.Equal(t, "Original title", task.Title)
	})

	t.Run("clear wins over a supplied value", func(t *testing.T) {
		t.Parallel()

		task := newTask(t)
		err := task.Apply(domain.TaskUpdate{
			Description:      strPtr("ignored"),
			ClearDescription: true,
		})
		require.NoError(t, err)
		assert.Nil(t, task.Description)
	})

	t.Run("any status may change to any other", func(t *testing.T) {
		t.Parallel()

		task := newTask(t)
		completed := domain.TaskStatusCompleted
		pending := domain.TaskStatusPending

		require.NoError(t, task.Apply(domain.TaskUpdate{Status: &completed}))
		require.NoError(t, task.Apply(domain.TaskUpdate{Status: &pending}))
		assert.Equal(t, domain.TaskStatusPending, task.Status)
	})
}

func TestIsValidTaskStatus(t *testing.T) {
	t.Parallel()

	assert.True(t, domain.IsValidTaskStatus(domain.TaskStatusPending))
	assert.True(t, domain.IsValidTaskStatus(domain.TaskStatusInProgress))
	assert.True(t, domain.IsValidTaskStatus(domain.TaskStatusCompleted))
	assert.False(t, domain.IsValidTaskStatus(domain.TaskStatus("archived")))
	assert.False(t, domain.IsValidTaskStatus(domain.TaskStatus("")))
}
