package usecase

import (
	"context"

	"harmony/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// AddReviewInput defines the data required to review a meal.
type AddReviewInput struct {
	Text   string
	Rating float64
}

// UpdateReviewInput defines the fields an author may change on their review.
type UpdateReviewInput struct {
	Text   string
	Rating float64
}

// EngagementUsecase defines the interface for the engagement aggregation:
// likes and reviews, together with the derived counters they maintain on
// meals and meal requests. All multi-row mutations are atomic.
type EngagementUsecase interface {
	// LikeMeal records a like and bumps the derived like counters on the
	// meal and on every request referencing it. There is no unlike.
	LikeMeal(ctx context.Context, caller Caller, mealID uuid.UUID) error

	// AddReview inserts a review and recomputes the meal's rating and
	// review count, mirroring both onto the meal's requests.
	AddReview(ctx context.Context, caller Caller, mealID uuid.UUID, input *AddReviewInput) (*entity.Review, error)

	// UpdateReview edits the author's review and recomputes the meal rating.
	// The review count and request mirrors are left unchanged.
	UpdateReview(ctx context.Context, caller Caller, reviewID uuid.UUID, input *UpdateReviewInput) (*entity.Review, error)

	// DeleteReview removes the author's review and recomputes the meal's
	// rating and exact review count.
	DeleteReview(ctx context.Context, caller Caller, reviewID uuid.UUID) error

	// ListAllReviews returns every review, newest first. Admin moderation view.
	ListAllReviews(ctx context.Context) ([]*entity.Review, error)

	// ListCallerReviews returns the caller's reviews, newest first.
	ListCallerReviews(ctx context.Context, caller Caller) ([]*entity.Review, error)
}
