package impl

import (
	"context"
	"testing"

	"taskboard/internal/domain/entity"
	domainerrors "taskboard/internal/domain/errors"
	"taskboard/internal/domain/repository"
	mockRepo "taskboard/internal/mocks/repository"
	"taskboard/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type taskServiceFixture struct {
	txManager *mockRepo.MockTransactionManager
	taskRepo  *mockRepo.MockTaskRepository
	service   usecase.TaskUsecase
}

func newTaskServiceFixture(t *testing.T) *taskServiceFixture {
	f := &taskServiceFixture{
		txManager: mockRepo.NewMockTransactionManager(t),
		taskRepo:  mockRepo.NewMockTaskRepository(t),
	}
	f.service = NewTaskService(TaskServiceParams{
		TxManager: f.txManager,
		TaskRepo:  f.taskRepo,
		Logger:    newDiscardLogger(),
	})

	return f
}

// runInTx wires the transaction manager mock to invoke the callback with a
// factory that hands out the given task repository.
func runInTx(t *testing.T, f *taskServiceFixture, ctx context.Context, txTaskRepo *mockRepo.MockTaskRepository) {
	repoFactory := mockRepo.NewMockRepositoryFactory(t)
	repoFactory.EXPECT().TaskRepo().Return(txTaskRepo)

	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(repoFactory)
		})
}

func TestTaskService_List(t *testing.T) {
	f := newTaskServiceFixture(t)
	ctx := context.Background()

	tasks := []*entity.Task{
		{ID: 1, Title: "first", UserID: 7},
		{ID: 2, Title: "second", UserID: 8},
	}

	f.taskRepo.EXPECT().
		FindAll(ctx).
		Return(tasks, nil)

	got, err := f.service.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, tasks, got)
}

func TestTaskService_List_RepositoryError(t *testing.T) {
	f := newTaskServiceFixture(t)
	ctx := context.Background()

	f.taskRepo.EXPECT().
		FindAll(ctx).
		Return(nil, errors.New("connection reset"))

	got, err := f.service.List(ctx)
	require.Error(t, err)
	assert.Nil(t, got)
}

func TestTaskService_Create(t *testing.T) {
	f := newTaskServiceFixture(t)
	ctx := context.Background()

	f.taskRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Task")).
		Run(func(ctx context.Context, task *entity.Task) {
			task.ID = 5
		}).
		Return(nil)

	task, err := f.service.Create(ctx, &usecase.CreateTaskInput{
		Title:       "write report",
		Description: "quarterly numbers",
		UserID:      7,
	})
	require.NoError(t, err)
	require.NotNil(t, task)
	assert.Equal(t, int64(5), task.ID)
	assert.Equal(t, "write report", task.Title)
	assert.Equal(t, "quarterly numbers", task.Description)
	assert.Equal(t, int64(7), task.UserID)
	assert.False(t, task.Completed)
}

func TestTaskService_Get(t *testing.T) {
	f := newTaskServiceFixture(t)
	ctx := context.Background()

	task := &entity.Task{ID: 5, Title: "write report", UserID: 7}

	f.taskRepo.EXPECT().
		FindByID(ctx, int64(5)).
		Return(task, nil)

	got, err := f.service.Get(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, task, got)
}

func TestTaskService_Get_NotFound(t *testing.T) {
	f := newTaskServiceFixture(t)
	ctx := context.Background()

	f.taskRepo.EXPECT().
		FindByID(ctx, int64(99)).
		Return(nil, repository.ErrTaskNotFound)

	got, err := f.service.Get(ctx, 99)
	require.Error(t, err)
	assert.Nil(t, got)
	assert.True(t, errors.Is(err, domainerrors.ErrTaskNotFound))
}

func TestTaskService_Update_PartialFields(t *testing.T) {
	f := newTaskServiceFixture(t)
	ctx := context.Background()

	stored := &entity.Task{
		ID:          5,
		Title:       "write report",
		Description: "quarterly numbers",
		Completed:   false,
		UserID:      7,
	}

	txTaskRepo := mockRepo.NewMockTaskRepository(t)
	txTaskRepo.EXPECT().
		FindByID(ctx, int64(5)).
		Return(stored, nil)
	txTaskRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Task")).
		Return(nil)
	runInTx(t, f, ctx, txTaskRepo)

	newTitle := "write final report"
	task, err := f.service.Update(ctx, 5, &usecase.UpdateTaskInput{
		Title: &newTitle,
	})
	require.NoError(t, err)
	require.NotNil(t, task)
	assert.Equal(t, "write final report", task.Title)
	// Untouched fields keep their stored values.
	assert.Equal(t, "quarterly numbers", task.Description)
	assert.False(t, task.Completed)
}

func TestTaskService_Update_ExplicitCompletedFalse(t *testing.T) {
	f := newTaskServiceFixture(t)
	ctx := context.Background()

	stored := &entity.Task{
		ID:        5,
		Title:     "write report",
		Completed: true,
		UserID:    7,
	}

	txTaskRepo := mockRepo.NewMockTaskRepository(t)
	txTaskRepo.EXPECT().
		FindByID(ctx, int64(5)).
		Return(stored, nil)
	txTaskRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Task")).
		Run(func(ctx context.Context, task *entity.Task) {
			assert.False(t, task.Completed)
		}).
		Return(nil)
	runInTx(t, f, ctx, txTaskRepo)

	completed := false
	task, err := f.service.Update(ctx, 5, &usecase.UpdateTaskInput{
		Completed: &completed,
	})
	require.NoError(t, err)
	require.NotNil(t, task)
	// An explicit false is persisted, not treated as an omitted field.
	assert.False(t, task.Completed)
	assert.Equal(t, "write report", task.Title)
}

func TestTaskService_Update_NotFound(t *testing.T) {
	f := newTaskServiceFixture(t)
	ctx := context.Background()

	txTaskRepo := mockRepo.NewMockTaskRepository(t)
	txTaskRepo.EXPECT().
		FindByID(ctx, int64(99)).
		Return(nil, repository.ErrTaskNotFound)
	runInTx(t, f, ctx, txTaskRepo)

	newTitle := "missing"
	task, err := f.service.Update(ctx, 99, &usecase.UpdateTaskInput{
		Title: &newTitle,
	})
	require.Error(t, err)
	assert.Nil(t, task)
	assert.True(t, errors.Is(err, domainerrors.ErrTaskNotFound))
}

func TestTaskService_Delete(t *testing.T) {
	f := newTaskServiceFixture(t)
	ctx := context.Background()

	stored := &entity.Task{ID: 5, Title: "write report", UserID: 7}

	txTaskRepo := mockRepo.NewMockTaskRepository(t)
	txTaskRepo.EXPECT().
		FindByID(ctx, int64(5)).
		Return(stored, nil)
	txTaskRepo.EXPECT().
		Delete(ctx, int64(5)).
		Return(nil)
	runInTx(t, f, ctx, txTaskRepo)

	task, err := f.service.Delete(ctx, 5)
	require.NoError(t, err)
	require.NotNil(t, task)
	// The snapshot read before deletion comes back to the caller.
	assert.Equal(t, int64(5), task.ID)
	assert.Equal(t, "write report", task.Title)
}

func TestTaskService_Delete_NotFound(t *testing.T) {
	f := newTaskServiceFixture(t)
	ctx := context.Background()

	txTaskRepo := mockRepo.NewMockTaskRepository(t)
	txTaskRepo.EXPECT().
		FindByID(ctx, int64(99)).
		Return(nil, repository.ErrTaskNotFound)
	runInTx(t, f, ctx, txTaskRepo)

	task, err := f.service.Delete(ctx, 99)
	require.Error(t, err)
	assert.Nil(t, task)
	assert.True(t, errors.Is(err, domainerrors.ErrTaskNotFound))
}
