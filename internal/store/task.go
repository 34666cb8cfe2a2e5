package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/Abdulaziz-cybers/ToDoKirano/internal/domain"
)

// TaskStore defines the interface for task data persistence.
type TaskStore interface {
	// Create saves a new task to the store. The task must be valid
	// according to domain validation rules; the owner is carried on the
	// task itself and is assigned by the caller from the authenticated
	// principal, never from client input.
	// Returns ErrInvalidEntity if the owning user does not exist.
	Create(ctx context.Context, task *domain.Task) error

	// GetByID retrieves a task by its unique ID.
	// Returns ErrTaskNotFound if the task does not exist.
	//
	// Note: lookup is by ID only. Owner-scoping for the read/update/delete
	// path is a handler-level decision, not enforced here.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error)

	// FindByOwner returns all tasks owned by the given user, ordered by
	// creation time ascending. Returns an empty slice (not nil) when the
	// user has no tasks.
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Task, error)

	// Update persists the current state of an existing task. Callers apply
	// partial changes to the domain object first (Task.Apply) so that only
	// explicitly supplied fields differ from the stored row.
	// Returns ErrTaskNotFound if the task does not exist.
	Update(ctx context.Context, task *domain.Task) error

	// Delete removes a task from the store permanently. There is no
	// tombstone and no recovery.
	// Returns ErrTaskNotFound if the task does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}
