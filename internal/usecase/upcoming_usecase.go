package usecase

import (
	"context"

	"harmony/internal/domain/entity"

	"github.com/google/uuid"
)

// AddUpcomingMealInput defines the data required to stage an upcoming meal.
type AddUpcomingMealInput struct {
	Title       string
	Category    string
	Price       float64
	Description string
	Ingredients []string
	ImageURL    string
}

// UpcomingUsecase defines the interface for the upcoming meal promotion:
// staged meals gather interest before staff publish them to the catalog.
type UpcomingUsecase interface {
	// ListUpcoming returns all staged meals, most liked first.
	ListUpcoming(ctx context.Context) ([]*entity.UpcomingMeal, error)

	// AddUpcoming stages a meal with no interest yet. Admin only.
	AddUpcoming(ctx context.Context, caller Caller, input *AddUpcomingMealInput) (*entity.UpcomingMeal, error)

	// LikeUpcoming registers the caller's interest. Premium tiers only;
	// double likes are rejected.
	LikeUpcoming(ctx context.Context, caller Caller, id uuid.UUID) (*entity.UpcomingMeal, error)

	// UnlikeUpcoming withdraws the caller's interest. No tier check.
	UnlikeUpcoming(ctx context.Context, caller Caller, id uuid.UUID) (*entity.UpcomingMeal, error)

	// PublishUpcoming atomically moves a staged meal into the catalog with
	// all derived counters reset. Admin only.
	PublishUpcoming(ctx context.Context, id uuid.UUID) (*entity.Meal, error)

	// DeleteUpcoming discards a staged meal. Admin only.
	DeleteUpcoming(ctx context.Context, id uuid.UUID) error
}
