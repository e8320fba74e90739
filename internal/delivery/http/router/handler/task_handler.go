package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"taskboard/internal/delivery/http/response"
	"taskboard/internal/domain/entity"
	"taskboard/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// TaskHandlerParams holds dependencies for TaskHandler, injected by Fx.
type TaskHandlerParams struct {
	fx.In

	TaskUC usecase.TaskUsecase
	Logger *slog.Logger
}

// TaskHandler holds dependencies for task-related handlers.
type TaskHandler struct {
	taskUC usecase.TaskUsecase
	logger *slog.Logger
}

// NewTaskHandler is the constructor for TaskHandler.
func NewTaskHandler(params TaskHandlerParams) *TaskHandler {
	return &TaskHandler{
		taskUC: params.TaskUC,
		logger: params.Logger,
	}
}

// CreateTaskRequest represents the request body for task creation.
type CreateTaskRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	UserID      int64  `json:"userId" validate:"required,gt=0"`
}

// UpdateTaskRequest represents the request body for a task update. Fields are
// pointers so an explicit false or empty string is distinguishable from an
// omitted field.
type UpdateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
}

// TaskMutationResponse pairs a confirmation message with the affected task.
type TaskMutationResponse struct {
	Message string         `json:"message"`
	Task    *entity.Task `json:"task"`
}

// List handles listing every task.
func (h *TaskHandler) List(c echo.Context) error {
	tasks, err := h.taskUC.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}
	return c.JSON(http.StatusOK, tasks)
}

// Create handles the task creation request.
func (h *TaskHandler) Create(c echo.Context) error {
	var req CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid task payload")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "Title and userId are required")
	}

	task, err := h.taskUC.Create(c.Request().Context(), &usecase.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		UserID:      req.UserID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusCreated, task)
}

// Get handles fetching a single task by its path ID.
func (h *TaskHandler) Get(c echo.Context) error {
	id, ok := taskIDParam(c)
	if !ok {
		return response.BadRequest(c, "Invalid task ID")
	}

	task, err := h.taskUC.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, task)
}

// Update handles a partial task update.
func (h *TaskHandler) Update(c echo.Context) error {
	id, ok := taskIDParam(c)
	if !ok {
		return response.BadRequest(c, "Invalid task ID")
	}

	var req UpdateTaskRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid task payload")
	}

	task, err := h.taskUC.Update(c.Request().Context(), id, &usecase.UpdateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, TaskMutationResponse{
		Message: "Task updated successfully",
		Task:    task,
	})
}

// Delete handles removing a task.
func (h *TaskHandler) Delete(c echo.Context) error {
	id, ok := taskIDParam(c)
	if !ok {
		return response.BadRequest(c, "Invalid task ID")
	}

	task, err := h.taskUC.Delete(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, TaskMutationResponse{
		Message: "Task deleted successfully",
		Task:    task,
	})
}

func taskIDParam(c echo.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
