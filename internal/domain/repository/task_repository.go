package repository

import (
	"context"

	"taskboard/internal/domain/entity"
	"taskboard/internal/errors"
)

// ErrTaskNotFound is returned when no task matches the given ID.
var ErrTaskNotFound = errors.New("task not found")

// TaskRepository is the persistence contract for tasks.
type TaskRepository interface {
	// Create persists a new task and fills in the generated ID and timestamps.
	Create(ctx context.Context, task *entity.Task) error

	// FindByID retrieves a task by primary key.
	FindByID(ctx context.Context, id int64) (*entity.Task, error)

	// FindAll returns every task in the store.
	FindAll(ctx context.Context) ([]*entity.Task, error)

	// Update saves all fields of the given task.
	Update(ctx context.Context, task *entity.Task) error

	// Delete removes the task with the given ID.
	Delete(ctx context.Context, id int64) error
}
