package usecase

import (
	"context"

	"taskboard/internal/domain/entity"
)

// CreateTaskInput defines the data required to create a task.
type CreateTaskInput struct {
	Title       string
	Description string
	UserID      int64
}

// UpdateTaskInput carries a partial update. Nil fields are left untouched;
// non-nil fields overwrite, including an explicit Completed=false.
type UpdateTaskInput struct {
	Title       *string
	Description *string
	Completed   *bool
}

// TaskUsecase defines the interface for task-related business operations.
type TaskUsecase interface {
	List(ctx context.Context) ([]*entity.Task, error)
	Create(ctx context.Context, input *CreateTaskInput) (*entity.Task, error)
	Get(ctx context.Context, id int64) (*entity.Task, error)
	Update(ctx context.Context, id int64, input *UpdateTaskInput) (*entity.Task, error)
	Delete(ctx context.Context, id int64) (*entity.Task, error)
}
