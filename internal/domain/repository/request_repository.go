// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"harmony/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for meal request persistence.
var (
	// ErrRequestNotFound is returned when a request is not found, not owned by
	// the caller, or no longer in the state the operation demands.
	ErrRequestNotFound = errors.New("meal request not found")
	// ErrDuplicateRequest is returned when the user already has a request for the meal.
	ErrDuplicateRequest = errors.New("meal already requested by this user")
)

// RequestRepository defines the interface for meal request persistence.
// The mirror methods update the denormalized engagement counters on request
// rows and are called by the aggregation alongside the meal update.
type RequestRepository interface {
	// Create persists a new meal request.
	Create(ctx context.Context, request *entity.MealRequest) error

	// FindByMealAndUser retrieves the request a user holds for a meal, if any.
	FindByMealAndUser(ctx context.Context, mealID, userID uuid.UUID) (*entity.MealRequest, error)

	// FindByUserEmail retrieves all requests owned by the given email, any status.
	FindByUserEmail(ctx context.Context, email string) ([]*entity.MealRequest, error)

	// FindByID retrieves a request by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.MealRequest, error)

	// Search retrieves all requests, any status, whose snapshot title or
	// requester name matches the optional case-insensitive substring term.
	Search(ctx context.Context, term string) ([]*entity.MealRequest, error)

	// DeletePending removes the request only when it matches (id, owner email,
	// status pending); otherwise returns ErrRequestNotFound.
	DeletePending(ctx context.Context, id uuid.UUID, ownerEmail string) error

	// MarkDelivered transitions a pending request to delivered, stamping the
	// update time. Returns ErrRequestNotFound when the request does not exist
	// or is no longer pending.
	MarkDelivered(ctx context.Context, id uuid.UUID) error

	// MirrorLikeAdded bumps the like mirror on every request referencing the
	// meal, regardless of status.
	MirrorLikeAdded(ctx context.Context, mealID uuid.UUID) error

	// MirrorReviewAdded sets the rating mirror and bumps the review-count
	// mirror on every request referencing the meal.
	MirrorReviewAdded(ctx context.Context, mealID uuid.UUID, rating float64) error
}
