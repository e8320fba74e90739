package impl

import (
	"context"
	"testing"
	"time"

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

func TestUserService_Register_Success(t *testing.T) {
	f := newUserServiceFixture(t, time.Hour)
	ctx := context.Background()

	f.hasher.EXPECT().
		Hash("plaintext").
		Return("$2a$10$hashedvalue", nil)

	f.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			user.ID = 42
		}).
		Return(nil)

	output, err := f.service.Register(ctx, &usecase.RegisterInput{
		Email:    "alice@example.com",
		Password: "plaintext",
	})
	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, int64(42), output.User.ID)
	assert.Equal(t, "alice@example.com", output.User.Email)
	assert.Equal(t, "$2a$10$hashedvalue", output.User.PasswordHash)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	f := newUserServiceFixture(t, time.Hour)
	ctx := context.Background()

	f.hasher.EXPECT().
		Hash("plaintext").
		Return("$2a$10$hashedvalue", nil)

	f.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(domainerrors.ErrEmailAlreadyRegistered.WrapMessage("email already exists"))

	output, err := f.service.Register(ctx, &usecase.RegisterInput{
		Email:    "alice@example.com",
		Password: "plaintext",
	})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailAlreadyRegistered))
}

func TestUserService_Register_HashFailure(t *testing.T) {
	f := newUserServiceFixture(t, time.Hour)
	ctx := context.Background()

	f.hasher.EXPECT().
		Hash("plaintext").
		Return("", errors.New("bcrypt failure"))

	output, err := f.service.Register(ctx, &usecase.RegisterInput{
		Email:    "alice@example.com",
		Password: "plaintext",
	})
	require.Error(t, err)
	assert.Nil(t, output)
}

func TestUserService_Login_Success(t *testing.T) {
	f := newUserServiceFixture(t, 30*time.Minute)
	ctx := context.Background()

	user := &entity.User{
		ID:           7,
		Email:        "alice@example.com",
		PasswordHash: "$2a$10$hashedvalue",
	}

	f.userRepo.EXPECT().
		FindByEmail(ctx, "alice@example.com").
		Return(user, nil)

	f.hasher.EXPECT().
		Check("plaintext", "$2a$10$hashedvalue").
		Return(true)

	f.tokenSvc.EXPECT().
		Issue(int64(7), 30*time.Minute).
		Return("signed-token", nil)

	output, err := f.service.Login(ctx, &usecase.LoginInput{
		Email:    "alice@example.com",
		Password: "plaintext",
	})
	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "signed-token", output.Token)
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	f := newUserServiceFixture(t, time.Hour)
	ctx := context.Background()

	f.userRepo.EXPECT().
		FindByEmail(ctx, "nobody@example.com").
		Return(nil, repository.ErrUserNotFound)

	output, err := f.service.Login(ctx, &usecase.LoginInput{
		Email:    "nobody@example.com",
		Password: "plaintext",
	})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	f := newUserServiceFixture(t, time.Hour)
	ctx := context.Background()

	user := &entity.User{
		ID:           7,
		Email:        "alice@example.com",
		PasswordHash: "$2a$10$hashedvalue",
	}

	f.userRepo.EXPECT().
		FindByEmail(ctx, "alice@example.com").
		Return(user, nil)

	f.hasher.EXPECT().
		Check("wrong", "$2a$10$hashedvalue").
		Return(false)

	output, err := f.service.Login(ctx, &usecase.LoginInput{
		Email:    "alice@example.com",
		Password: "wrong",
	})
	require.Error(t, err)
	assert.Nil(t, output)
	// Wrong password and unknown email surface as the same error.
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_Login_DefaultTokenTTL(t *testing.T) {
	// A zero configured TTL falls back to one hour.
	f := newUserServiceFixture(t, 0)
	ctx := context.Background()

	user := &entity.User{
		ID:           7,
		Email:        "alice@example.com",
		PasswordHash: "$2a$10$hashedvalue",
	}

	f.userRepo.EXPECT().
		FindByEmail(ctx, "alice@example.com").
		Return(user, nil)

	f.hasher.EXPECT().
		Check("plaintext", "$2a$10$hashedvalue").
		Return(true)

	f.tokenSvc.EXPECT().
		Issue(int64(7), time.Hour).
		Return("signed-token", nil)

	_, err := f.service.Login(ctx, &usecase.LoginInput{
		Email:    "alice@example.com",
		Password: "plaintext",
	})
	require.NoError(t, err)
}

func TestUserService_ResetPassword_Success(t *testing.T) {
	f := newUserServiceFixture(t, time.Hour)
	ctx := context.Background()

	user := &entity.User{
		ID:           7,
		Email:        "alice@example.com",
		PasswordHash: "$2a$10$oldhash",
	}

	f.hasher.EXPECT().
		Hash("newpassword").
		Return("$2a$10$newhash", nil)

	txUserRepo := mockRepo.NewMockUserRepository(t)
	txUserRepo.EXPECT().
		FindByEmail(ctx, "alice@example.com").
		Return(user, nil)
	txUserRepo.EXPECT().
		UpdatePassword(ctx, int64(7), "$2a$10$newhash").
		Return(nil)

	repoFactory := mockRepo.NewMockRepositoryFactory(t)
	repoFactory.EXPECT().UserRepo().Return(txUserRepo)

	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(repoFactory)
		})

	err := f.service.ResetPassword(ctx, &usecase.ResetPasswordInput{
		Email:       "alice@example.com",
		NewPassword: "newpassword",
	})
	require.NoError(t, err)
}

func TestUserService_ResetPassword_UnknownEmail(t *testing.T) {
	f := newUserServiceFixture(t, time.Hour)
	ctx := context.Background()

	f.hasher.EXPECT().
		Hash("newpassword").
		Return("$2a$10$newhash", nil)

	txUserRepo := mockRepo.NewMockUserRepository(t)
	txUserRepo.EXPECT().
		FindByEmail(ctx, "nobody@example.com").
		Return(nil, repository.ErrUserNotFound)

	repoFactory := mockRepo.NewMockRepositoryFactory(t)
	repoFactory.EXPECT().UserRepo().Return(txUserRepo)

	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(repoFactory)
		})

	err := f.service.ResetPassword(ctx, &usecase.ResetPasswordInput{
		Email:       "nobody@example.com",
		NewPassword: "newpassword",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}
