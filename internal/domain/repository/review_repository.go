// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"harmony/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrReviewNotFound is returned when a review is not found.
var ErrReviewNotFound = errors.New("review not found")

// ReviewRepository defines the interface for review persistence.
type ReviewRepository interface {
	// Create persists a new review.
	Create(ctx context.Context, review *entity.Review) error

	// FindByID retrieves a review by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error)

	// FindByMeal retrieves all reviews for a meal, newest first.
	FindByMeal(ctx context.Context, mealID uuid.UUID) ([]*entity.Review, error)

	// FindByUserEmail retrieves all reviews written by the given email, newest first.
	FindByUserEmail(ctx context.Context, email string) ([]*entity.Review, error)

	// FindAll retrieves every review, newest first. Staff moderation view.
	FindAll(ctx context.Context) ([]*entity.Review, error)

	// Update modifies a review's text and rating in place.
	Update(ctx context.Context, review *entity.Review) error

	// Delete removes a review by ID.
	Delete(ctx context.Context, id uuid.UUID) error

	// Count returns the total number of reviews.
	Count(ctx context.Context) (int64, error)
}
