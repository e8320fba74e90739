package impl

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"taskboard/config"
	mockRepo "taskboard/internal/mocks/repository"
	mockSvc "taskboard/internal/mocks/service"
	"taskboard/internal/usecase"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(tokenTTL time.Duration) *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:     10,
			AccessTokenTTL: tokenTTL,
		},
	}
}

type userServiceFixture struct {
	txManager *mockRepo.MockTransactionManager
	userRepo  *mockRepo.MockUserRepository
	hasher    *mockSvc.MockPasswordHasher
	tokenSvc  *mockSvc.MockTokenService
	service   usecase.UserUsecase
}

func newUserServiceFixture(t *testing.T, tokenTTL time.Duration) *userServiceFixture {
	f := &userServiceFixture{
		txManager: mockRepo.NewMockTransactionManager(t),
		userRepo:  mockRepo.NewMockUserRepository(t),
		hasher:    mockSvc.NewMockPasswordHasher(t),
		tokenSvc:  mockSvc.NewMockTokenService(t),
	}
	f.service = NewUserService(UserServiceParams{
		TxManager:    f.txManager,
		UserRepo:     f.userRepo,
		Hasher:       f.hasher,
		TokenService: f.tokenSvc,
		Config:       newTestConfig(tokenTTL),
		Logger:       newDiscardLogger(),
	})

	return f
}
