// Package repository defines the persistence contracts required by the domain.
// Implementations live in the infra layer; the domain only depends on these
// interfaces.
package repository

import (
	"context"

	"taskboard/internal/domain/entity"
	"taskboard/internal/errors"
)

// ErrUserNotFound is returned when no user matches the given lookup key.
var ErrUserNotFound = errors.New("user not found")

// UserRepository is the persistence contract for user accounts.
type UserRepository interface {
	// Create persists a new user. The implementation fills in the generated
	// ID and timestamps on success.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a user by primary key.
	FindByID(ctx context.Context, id int64) (*entity.User, error)

	// FindByEmail retrieves a user by the unique email column.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// UpdatePassword replaces the stored password hash for the given user.
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
}
