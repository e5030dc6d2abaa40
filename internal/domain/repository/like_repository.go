// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"harmony/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrDuplicateLike is returned when a (meal, user) like already exists.
var ErrDuplicateLike = errors.New("meal already liked by this user")

// LikeRepository defines the interface for like-record persistence.
type LikeRepository interface {
	// Create persists a new like. Returns ErrDuplicateLike when the
	// (meal, user) pair already has one.
	Create(ctx context.Context, like *entity.Like) error

	// Exists reports whether a like exists for the (meal, user) pair.
	Exists(ctx context.Context, mealID, userID uuid.UUID) (bool, error)
}
