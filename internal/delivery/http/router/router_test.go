package router

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"taskboard/config"
	"taskboard/internal/delivery/http/middleware"
	"taskboard/internal/delivery/http/router/handler"
	"taskboard/internal/delivery/http/validator"
	"taskboard/internal/domain/entity"
	domainerrors "taskboard/internal/domain/errors"
	"taskboard/internal/domain/service"
	"taskboard/internal/infra/auth"
	mockUC "taskboard/internal/mocks/usecase"
	"taskboard/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type routerFixture struct {
	server   *echo.Echo
	userUC   *mockUC.MockUserUsecase
	taskUC   *mockUC.MockTaskUsecase
	tokenSvc service.TokenService
}

// newRouterFixture assembles an echo server with the real router, error
// handler, and JWT verification, backed by mocked use cases.
func newRouterFixture(t *testing.T) *routerFixture {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := &config.Config{}
	cfg.SecretKey.Access = "router-test-secret"

	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	userUC := mockUC.NewMockUserUsecase(t)
	taskUC := mockUC.NewMockTaskUsecase(t)

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	r := NewRouter(RouterParams{
		UserHandler:    handler.NewUserHandler(handler.UserHandlerParams{UserUC: userUC, Logger: logger}),
		TaskHandler:    handler.NewTaskHandler(handler.TaskHandlerParams{TaskUC: taskUC, Logger: logger}),
		AuthMiddleware: middleware.NewAuthMiddleware(tokenSvc),
	})
	r.RegisterRoutes(e)

	return &routerFixture{
		server:   e,
		userUC:   userUC,
		taskUC:   taskUC,
		tokenSvc: tokenSvc,
	}
}

func (f *routerFixture) do(method, target, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	f.server.ServeHTTP(rec, req)

	return rec
}

func TestRouter_Register_DuplicateEmailMapsTo400(t *testing.T) {
	f := newRouterFixture(t)

	f.userUC.EXPECT().
		Register(mock.Anything, mock.AnythingOfType("*usecase.RegisterInput")).
		Return(nil, domainerrors.ErrEmailAlreadyRegistered.WrapMessage("email already exists"))

	rec := f.do(http.MethodPost, "/users/register",
		`{"email":"alice@example.com","password":"plaintext"}`, "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"User already exists"}`, rec.Body.String())
}

func TestRouter_Login_InvalidCredentialsMapsTo401(t *testing.T) {
	f := newRouterFixture(t)

	f.userUC.EXPECT().
		Login(mock.Anything, mock.AnythingOfType("*usecase.LoginInput")).
		Return(nil, domainerrors.ErrInvalidCredentials.WrapMessage("password mismatch"))

	rec := f.do(http.MethodPost, "/users/login",
		`{"email":"alice@example.com","password":"wrong"}`, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid credentials"}`, rec.Body.String())
}

func TestRouter_ResetPassword_RequiresToken(t *testing.T) {
	f := newRouterFixture(t)

	rec := f.do(http.MethodPut, "/users/reset-password",
		`{"email":"alice@example.com","newPassword":"changed"}`, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Authorization header is missing"}`, rec.Body.String())
}

func TestRouter_Tasks_RequireToken(t *testing.T) {
	f := newRouterFixture(t)

	rec := f.do(http.MethodGet, "/api/tasks", "", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Authorization header is missing"}`, rec.Body.String())
}

func TestRouter_Tasks_ListWithValidToken(t *testing.T) {
	f := newRouterFixture(t)

	token, err := f.tokenSvc.Issue(7, time.Hour)
	require.NoError(t, err)

	f.taskUC.EXPECT().
		List(mock.Anything).
		Return([]*entity.Task{{ID: 1, Title: "first", UserID: 7}}, nil)

	rec := f.do(http.MethodGet, "/api/tasks", "", token)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"title":"first"`)
}

func TestRouter_Tasks_ExpiredToken(t *testing.T) {
	f := newRouterFixture(t)

	token, err := f.tokenSvc.Issue(7, -time.Minute)
	require.NoError(t, err)

	rec := f.do(http.MethodGet, "/api/tasks", "", token)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Token expired"}`, rec.Body.String())
}

func TestRouter_Tasks_GetUnknownIDMapsTo404(t *testing.T) {
	f := newRouterFixture(t)

	token, err := f.tokenSvc.Issue(7, time.Hour)
	require.NoError(t, err)

	f.taskUC.EXPECT().
		Get(mock.Anything, int64(99)).
		Return(nil, domainerrors.ErrTaskNotFound.WrapMessage("no task with the given id"))

	rec := f.do(http.MethodGet, "/api/tasks/99", "", token)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Task not found"}`, rec.Body.String())
}

func TestRouter_Tasks_NonNumericID(t *testing.T) {
	f := newRouterFixture(t)

	token, err := f.tokenSvc.Issue(7, time.Hour)
	require.NoError(t, err)

	rec := f.do(http.MethodGet, "/api/tasks/abc", "", token)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid task ID"}`, rec.Body.String())
}

func TestRouter_Tasks_CreateWithValidToken(t *testing.T) {
	f := newRouterFixture(t)

	token, err := f.tokenSvc.Issue(7, time.Hour)
	require.NoError(t, err)

	f.taskUC.EXPECT().
		Create(mock.Anything, &usecase.CreateTaskInput{
			Title:  "write report",
			UserID: 7,
		}).
		Return(&entity.Task{ID: 5, Title: "write report", UserID: 7}, nil)

	rec := f.do(http.MethodPost, "/api/tasks",
		`{"title":"write report","userId":7}`, token)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":5`)
}

func TestRouter_HealthCheck(t *testing.T) {
	f := newRouterFixture(t)

	rec := f.do(http.MethodGet, "/health", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
