package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"taskboard/internal/delivery/http/validator"
	"taskboard/internal/domain/entity"
	mockUC "taskboard/internal/mocks/usecase"
	"taskboard/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTaskHandlerContext(method, target, body, pathID string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if pathID != "" {
		c.SetParamNames("id")
		c.SetParamValues(pathID)
	}

	return c, rec
}

func TestTaskHandler_List(t *testing.T) {
	taskUC := mockUC.NewMockTaskUsecase(t)
	h := NewTaskHandler(TaskHandlerParams{TaskUC: taskUC, Logger: newDiscardLogger()})

	c, rec := newTaskHandlerContext(http.MethodGet, "/api/tasks", "", "")

	taskUC.EXPECT().
		List(c.Request().Context()).
		Return([]*entity.Task{
			{ID: 1, Title: "first", UserID: 7},
			{ID: 2, Title: "second", Completed: true, UserID: 8},
		}, nil)

	require.NoError(t, h.List(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"title":"first"`)
	assert.Contains(t, body, `"completed":true`)
}

func TestTaskHandler_Create_Success(t *testing.T) {
	taskUC := mockUC.NewMockTaskUsecase(t)
	h := NewTaskHandler(TaskHandlerParams{TaskUC: taskUC, Logger: newDiscardLogger()})

	c, rec := newTaskHandlerContext(http.MethodPost, "/api/tasks",
		`{"title":"write report","description":"quarterly numbers","userId":7}`, "")

	taskUC.EXPECT().
		Create(c.Request().Context(), &usecase.CreateTaskInput{
			Title:       "write report",
			Description: "quarterly numbers",
			UserID:      7,
		}).
		Return(&entity.Task{
			ID:          5,
			Title:       "write report",
			Description: "quarterly numbers",
			UserID:      7,
		}, nil)

	require.NoError(t, h.Create(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":5`)
	assert.Contains(t, rec.Body.String(), `"completed":false`)
}

func TestTaskHandler_Create_MissingTitle(t *testing.T) {
	taskUC := mockUC.NewMockTaskUsecase(t)
	h := NewTaskHandler(TaskHandlerParams{TaskUC: taskUC, Logger: newDiscardLogger()})

	c, rec := newTaskHandlerContext(http.MethodPost, "/api/tasks",
		`{"description":"no title","userId":7}`, "")

	require.NoError(t, h.Create(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Title and userId are required"}`, rec.Body.String())
}

func TestTaskHandler_Get_Success(t *testing.T) {
	taskUC := mockUC.NewMockTaskUsecase(t)
	h := NewTaskHandler(TaskHandlerParams{TaskUC: taskUC, Logger: newDiscardLogger()})

	c, rec := newTaskHandlerContext(http.MethodGet, "/api/tasks/5", "", "5")

	taskUC.EXPECT().
		Get(c.Request().Context(), int64(5)).
		Return(&entity.Task{ID: 5, Title: "write report", UserID: 7}, nil)

	require.NoError(t, h.Get(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":5`)
}

func TestTaskHandler_Get_NonNumericID(t *testing.T) {
	taskUC := mockUC.NewMockTaskUsecase(t)
	h := NewTaskHandler(TaskHandlerParams{TaskUC: taskUC, Logger: newDiscardLogger()})

	c, rec := newTaskHandlerContext(http.MethodGet, "/api/tasks/abc", "", "abc")

	require.NoError(t, h.Get(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid task ID"}`, rec.Body.String())
}

func TestTaskHandler_Get_NonPositiveID(t *testing.T) {
	taskUC := mockUC.NewMockTaskUsecase(t)
	h := NewTaskHandler(TaskHandlerParams{TaskUC: taskUC, Logger: newDiscardLogger()})

	c, rec := newTaskHandlerContext(http.MethodGet, "/api/tasks/0", "", "0")

	require.NoError(t, h.Get(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid task ID"}`, rec.Body.String())
}

func TestTaskHandler_Update_PartialBody(t *testing.T) {
	taskUC := mockUC.NewMockTaskUsecase(t)
	h := NewTaskHandler(TaskHandlerParams{TaskUC: taskUC, Logger: newDiscardLogger()})

	c, rec := newTaskHandlerContext(http.MethodPut, "/api/tasks/5",
		`{"completed":false}`, "5")

	completed := false
	taskUC.EXPECT().
		Update(c.Request().Context(), int64(5), &usecase.UpdateTaskInput{
			Completed: &completed,
		}).
		Return(&entity.Task{ID: 5, Title: "write report", Completed: false, UserID: 7}, nil)

	require.NoError(t, h.Update(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"message":"Task updated successfully"`)
	assert.Contains(t, rec.Body.String(), `"completed":false`)
}

func TestTaskHandler_Delete_Success(t *testing.T) {
	taskUC := mockUC.NewMockTaskUsecase(t)
	h := NewTaskHandler(TaskHandlerParams{TaskUC: taskUC, Logger: newDiscardLogger()})

	c, rec := newTaskHandlerContext(http.MethodDelete, "/api/tasks/5", "", "5")

	taskUC.EXPECT().
		Delete(c.Request().Context(), int64(5)).
		Return(&entity.Task{ID: 5, Title: "write report", UserID: 7}, nil)

	require.NoError(t, h.Delete(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"message":"Task deleted successfully"`)
	assert.Contains(t, rec.Body.String(), `"id":5`)
}
