// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"harmony/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing user entity in the storage.
	Update(ctx context.Context, user *entity.User) error

	// UpdateTier sets the membership tier for the user with the given email.
	UpdateTier(ctx context.Context, email string, tier entity.MembershipTier) error

	// UpdateRole sets the role for the user with the given ID.
	UpdateRole(ctx context.Context, id uuid.UUID, role entity.Role) error

	// Delete removes a user by ID.
	Delete(ctx context.Context, id uuid.UUID) error

	// FindPage retrieves one page of users plus the total user count.
	FindPage(ctx context.Context, page, limit int) ([]*entity.User, int64, error)

	// Count returns the total number of users.
	Count(ctx context.Context) (int64, error)
}
