package domain

import (
	"errors"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// TaskStatus represents the workflow state of a task.
type TaskStatus string

// Possible task status values. The set is closed but there are no
// transition restrictions: any status may change to any other.
const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
)

// MaxTaskTitleLength is the maximum number of characters allowed in a
// task title, matching the varchar(255) column in the tasks table.
// Counted in runes, not bytes, like the column and the request validator.
const MaxTaskTitleLength = 255

// Task-specific validation errors
var (
	// ErrTaskIDEmpty is returned when a task ID is empty or nil.
	ErrTaskIDEmpty = errors.New("task ID cannot be empty")

	// ErrTaskUserIDEmpty is returned when a task's user ID is empty or nil.
	ErrTaskUserIDEmpty = errors.New("task user ID cannot be empty")

	// ErrTaskTitleEmpty is returned when a task's title is empty.
	ErrTaskTitleEmpty = errors.New("task title cannot be empty")

	// ErrTaskTitleTooLong is returned when a task's title exceeds MaxTaskTitleLength.
	ErrTaskTitleTooLong = errors.New("task title cannot exceed 255 characters")

	// ErrInvalidTaskStatus is returned when a task's status is outside the
	// enumerated set.
	ErrInvalidTaskStatus = errors.New("invalid task status")
)

// Task represents a single to-do item owned by a user.
// Description and DueDate are optional and serialize as null when absent.
type Task struct {
	ID          uuid.UUID  `json:"id"`
	UserID      uuid.UUID  `json:"user_id"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	Status      TaskStatus `json:"status"`
	DueDate     *time.Time `json:"due_date"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// NewTask creates a new Task owned by the given user.
// It generates a new UUID for the task ID and sets the creation/update
// timestamps. The owner is always taken from this argument, never from
// client-supplied input. Returns an error if validation fails.
func NewTask(
	userID uuid.UUID,
	title string,
	description *string,
	status TaskStatus,
	dueDate *time.Time,
) (*Task, error) {
	now := time.Now().UTC()
	task := &Task{
		ID:          uuid.New(),
		UserID:      userID,
		Title:       title,
		Description: description,
		Status:      status,
		DueDate:     dueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks if the Task has valid data.
// Returns an error if any field fails validation.
func (t *Task) Validate() error {
	if t.ID == uuid.Nil {
		return ErrTaskIDEmpty
	}

	if t.UserID == uuid.Nil {
		return ErrTaskUserIDEmpty
	}

	if t.Title == "" {
		return ErrTaskTitleEmpty
	}

	if utf8.RuneCountInString(t.Title) > MaxTaskTitleLength {
		return ErrTaskTitleTooLong
	}

	if !IsValidTaskStatus(t.Status) {
		return ErrInvalidTaskStatus
	}

	return nil
}

// TaskUpdate describes a partial update to a task. Only non-nil fields are
// applied; nil fields leave the current value untouched. The nullable
// fields (description, due date) can also be cleared explicitly via the
// Clear flags, which take precedence over the corresponding pointer.
type TaskUpdate struct {
	Title            *string
	Description      *string
	Status           *TaskStatus
	DueDate          *time.Time
	ClearDescription bool
	ClearDueDate     bool
}

// Apply applies the supplied fields of the update to the task and bumps the
// UpdatedAt timestamp. If the resulting task would be invalid, the task is
// left unchanged and the validation error is returned.
func (t *Task) Apply(update TaskUpdate) error {
	orig := *t

	if update.Title != nil {
		t.Title = *update.Title
	}
	switch {
	case update.ClearDescription:
		t.Description = nil
	case update.Description != nil:
		t.Description = update.Description
	}
	if update.Status != nil {
		t.Status = *update.Status
	}
	switch {
	case update.ClearDueDate:
		t.DueDate = nil
	case update.DueDate != nil:
		t.DueDate = update.DueDate
	}

	if err := t.Validate(); err != nil {
		*t = orig
		return err
	}

	t.UpdatedAt = time.Now().UTC()
	return nil
}

// IsValidTaskStatus checks if the given status is a valid TaskStatus.
func IsValidTaskStatus(status TaskStatus) bool {
	switch status {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted:
		return true
	default:
		return false
	}
}
