// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"harmony/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrMealNotFound is returned when a meal is not found.
var ErrMealNotFound = errors.New("meal not found")

// MealRepository defines the interface for meal catalog persistence.
// The counter mutation methods exist so the engagement aggregation can issue
// targeted derived-field updates inside a transaction instead of rewriting
// whole rows.
type MealRepository interface {
	// Create persists a new meal.
	Create(ctx context.Context, meal *entity.Meal) error

	// FindByID retrieves a meal by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Meal, error)

	// Update modifies a meal's descriptive fields. Derived counters and the
	// creation timestamp are preserved by the caller.
	Update(ctx context.Context, meal *entity.Meal) error

	// Delete removes a meal by ID.
	Delete(ctx context.Context, id uuid.UUID) error

	// FindPage retrieves one page of meals matching the filter, newest first,
	// plus the total match count.
	FindPage(ctx context.Context, filter *entity.MealFilter) ([]*entity.Meal, int64, error)

	// Categories returns the distinct category names in the catalog.
	Categories(ctx context.Context) ([]string, error)

	// PriceRange returns the min and max price over the whole catalog.
	PriceRange(ctx context.Context) (entity.PriceRange, error)

	// FindByDistributor retrieves all meals added by the given email, newest first.
	FindByDistributor(ctx context.Context, email string) ([]*entity.Meal, error)

	// FindTopByCategory retrieves meals of a category ordered by rating then
	// likes, both descending. An empty category means all categories; limit 0
	// means no limit.
	FindTopByCategory(ctx context.Context, category string, limit int) ([]*entity.Meal, error)

	// IncrementLikes adds delta to the meal's derived like counter.
	IncrementLikes(ctx context.Context, id uuid.UUID, delta int) error

	// SetRating writes the recomputed average rating.
	SetRating(ctx context.Context, id uuid.UUID, rating float64) error

	// SetRatingAndIncrementReviews writes the recomputed rating and bumps
	// the review counter by one, as a single update.
	SetRatingAndIncrementReviews(ctx context.Context, id uuid.UUID, rating float64) error

	// SetRatingAndReviewsCount writes both derived review fields exactly.
	SetRatingAndReviewsCount(ctx context.Context, id uuid.UUID, rating float64, count int) error

	// Count returns the total number of meals.
	Count(ctx context.Context) (int64, error)

	// CountByDistributor returns the number of meals added by the given email.
	CountByDistributor(ctx context.Context, email string) (int64, error)
}
