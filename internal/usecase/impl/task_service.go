package impl

import (
	"context"
	"log/slog"

	deliverycontext "taskboard/internal/delivery/context"
	"taskboard/internal/domain/entity"
	domainerrors "taskboard/internal/domain/errors"
	"taskboard/internal/domain/repository"
	"taskboard/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// taskService implements the TaskUsecase interface.
type taskService struct {
	txManager repository.TransactionManager
	taskRepo  repository.TaskRepository
	logger    *slog.Logger
}

// TaskServiceParams holds dependencies for taskService, injected by Fx.
type TaskServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	TaskRepo  repository.TaskRepository
	Logger    *slog.Logger
}

// NewTaskService is the constructor for taskService.
func NewTaskService(params TaskServiceParams) usecase.TaskUsecase {
	return &taskService{
		txManager: params.TxManager,
		taskRepo:  params.TaskRepo,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *taskService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List returns every task. Results are not scoped to the requesting identity.
func (srv *taskService) List(ctx context.Context) ([]*entity.Task, error) {
	tasks, err := srv.taskRepo.FindAll(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list tasks", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list tasks")
	}

	return tasks, nil
}

// Create persists a new task. Description defaults to the empty string and
// Completed always starts false.
func (srv *taskService) Create(ctx context.Context, input *usecase.CreateTaskInput) (*entity.Task, error) {
	task := &entity.Task{
		Title:       input.Title,
		Description: input.Description,
		Completed:   false,
		UserID:      input.UserID,
	}

	if err := srv.taskRepo.Create(ctx, task); err != nil {
		srv.log(ctx).Error("Failed to create task", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create task")
	}

	srv.log(ctx).Debug("Task created", slog.Int64("taskID", task.ID), slog.Int64("userID", task.UserID))

	return task, nil
}

// Get retrieves a single task by ID.
func (srv *taskService) Get(ctx context.Context, id int64) (*entity.Task, error) {
	task, err := srv.taskRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return nil, domainerrors.ErrTaskNotFound.WrapMessage("no task with the given id")
		}
		srv.log(ctx).Error("Failed to find task", slog.Int64("taskID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to find task")
	}

	return task, nil
}

// Update applies a partial update inside a transaction so the read-modify-write
// is atomic. Only non-nil input fields overwrite the stored values; an explicit
// Completed=false is persisted, not treated as absent.
func (srv *taskService) Update(ctx context.Context, id int64, input *usecase.UpdateTaskInput) (*entity.Task, error) {
	var updated *entity.Task

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		taskRepo := repoFactory.TaskRepo()

		task, err := taskRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrTaskNotFound) {
				return domainerrors.ErrTaskNotFound.WrapMessage("no task with the given id")
			}

			return errors.Wrap(err, "failed to find task during update")
		}

		if input.Title != nil {
			task.Title = *input.Title
		}
		if input.Description != nil {
			task.Description = *input.Description
		}
		if input.Completed != nil {
			task.Completed = *input.Completed
		}

		if err := taskRepo.Update(ctx, task); err != nil {
			return errors.Wrap(err, "failed to update task")
		}

		updated = task

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Task update failed", slog.Int64("taskID", id), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Task updated", slog.Int64("taskID", id))

	return updated, nil
}

// Delete removes a task and returns the deleted record's snapshot.
func (srv *taskService) Delete(ctx context.Context, id int64) (*entity.Task, error) {
	var deleted *entity.Task

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		taskRepo := repoFactory.TaskRepo()

		task, err := taskRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrTaskNotFound) {
				return domainerrors.ErrTaskNotFound.WrapMessage("no task with the given id")
			}

			return errors.Wrap(err, "failed to find task during delete")
		}

		if err := taskRepo.Delete(ctx, id); err != nil {
			return errors.Wrap(err, "failed to delete task")
		}

		deleted = task

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Task delete failed", slog.Int64("taskID", id), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Task deleted", slog.Int64("taskID", id))

	return deleted, nil
}
