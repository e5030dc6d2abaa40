package impl

import (
	"context"
	"log/slog"
	"math"
	"time"

	deliverycontext "harmony/internal/delivery/context"
	"harmony/internal/domain/constants"
	"harmony/internal/domain/entity"
	domainerrors "harmony/internal/domain/errors"
	"harmony/internal/domain/repository"
	"harmony/internal/domain/service"
	"harmony/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// engagementService implements the EngagementUsecase interface. Every
// mutation runs the row insert and all derived counter updates in one
// transaction so readers never observe a half-applied aggregation.
type engagementService struct {
	txManager      repository.TransactionManager
	userRepo       repository.UserRepository
	reviewRepo     repository.ReviewRepository
	eventPublisher service.EventPublisher
	logger         *slog.Logger
}

// EngagementServiceParams holds dependencies for EngagementService, injected by Fx.
type EngagementServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	UserRepo       repository.UserRepository
	ReviewRepo     repository.ReviewRepository
	EventPublisher service.EventPublisher
	Logger         *slog.Logger
}

// NewEngagementService is the constructor for engagementService.
func NewEngagementService(params EngagementServiceParams) usecase.EngagementUsecase {
	return &engagementService{
		txManager:      params.TxManager,
		userRepo:       params.UserRepo,
		reviewRepo:     params.ReviewRepo,
		eventPublisher: params.EventPublisher,
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *engagementService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// LikeMeal records a like and bumps the like counter on the meal and on all
// of its requests. Likes are permanent; there is no unlike path.
func (srv *engagementService) LikeMeal(ctx context.Context, caller usecase.Caller, mealID uuid.UUID) error {
	user, err := srv.loadUser(ctx, caller)
	if err != nil {
		return err
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.MealRepo().FindByID(ctx, mealID); err != nil {
			if errors.Is(err, repository.ErrMealNotFound) {
				return domainerrors.ErrMealNotFound.WrapMessage("meal to like not found")
			}

			return errors.Wrap(err, "failed to load meal")
		}

		like := &entity.Like{
			ID:        uuid.New(),
			MealID:    mealID,
			UserID:    user.ID,
			UserName:  user.Name,
			UserEmail: user.Email,
			CreatedAt: time.Now(),
		}
		if err := repoFactory.LikeRepo().Create(ctx, like); err != nil {
			if errors.Is(err, repository.ErrDuplicateLike) {
				return domainerrors.ErrMealAlreadyLiked.WrapMessage("like already recorded")
			}

			return errors.Wrap(err, "failed to record like")
		}

		if err := repoFactory.MealRepo().IncrementLikes(ctx, mealID, 1); err != nil {
			return errors.Wrap(err, "failed to bump meal like counter")
		}

		if err := repoFactory.RequestRepo().MirrorLikeAdded(ctx, mealID); err != nil {
			return errors.Wrap(err, "failed to mirror like onto requests")
		}

		return nil
	})
	if err != nil {
		return err
	}

	srv.publishEvent(ctx, &service.EngagementEvent{
		Type:      constants.EventMealLiked,
		MealID:    mealID.String(),
		UserEmail: user.Email,
	})

	return nil
}

// AddReview inserts a review, recomputes the meal's average rating and review
// count, and mirrors both onto the meal's requests.
func (srv *engagementService) AddReview(ctx context.Context, caller usecase.Caller, mealID uuid.UUID, input *usecase.AddReviewInput) (*entity.Review, error) {
	if err := validateReviewInput(input.Text, input.Rating); err != nil {
		return nil, err
	}

	user, err := srv.loadUser(ctx, caller)
	if err != nil {
		return nil, err
	}

	review := &entity.Review{
		ID:        uuid.New(),
		MealID:    mealID,
		UserID:    user.ID,
		UserName:  user.Name,
		UserEmail: user.Email,
		Text:      input.Text,
		Rating:    input.Rating,
		CreatedAt: time.Now(),
	}

	var rating float64
	var reviewsCount int
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.MealRepo().FindByID(ctx, mealID); err != nil {
			if errors.Is(err, repository.ErrMealNotFound) {
				return domainerrors.ErrMealNotFound.WrapMessage("meal to review not found")
			}

			return errors.Wrap(err, "failed to load meal")
		}

		if err := repoFactory.ReviewRepo().Create(ctx, review); err != nil {
			if errors.Is(err, repository.ErrMealNotFound) {
				return domainerrors.ErrMealNotFound.WrapMessage("meal to review not found")
			}

			return errors.Wrap(err, "failed to create review")
		}

		reviews, err := repoFactory.ReviewRepo().FindByMeal(ctx, mealID)
		if err != nil {
			return errors.Wrap(err, "failed to load reviews for recompute")
		}

		rating = averageRating(reviews)
		reviewsCount = len(reviews)

		if err := repoFactory.MealRepo().SetRatingAndIncrementReviews(ctx, mealID, rating); err != nil {
			return errors.Wrap(err, "failed to write meal review counters")
		}

		if err := repoFactory.RequestRepo().MirrorReviewAdded(ctx, mealID, rating); err != nil {
			return errors.Wrap(err, "failed to mirror review onto requests")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.publishEvent(ctx, &service.EngagementEvent{
		Type:         constants.EventReviewCreated,
		MealID:       mealID.String(),
		UserEmail:    user.Email,
		Rating:       rating,
		ReviewsCount: reviewsCount,
	})

	return review, nil
}

// UpdateReview edits the author's review and recomputes the meal rating only.
// The review count and the request mirrors keep their pre-edit values.
func (srv *engagementService) UpdateReview(ctx context.Context, caller usecase.Caller, reviewID uuid.UUID, input *usecase.UpdateReviewInput) (*entity.Review, error) {
	if err := validateReviewInput(input.Text, input.Rating); err != nil {
		return nil, err
	}

	var updated *entity.Review
	var rating float64
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		review, err := repoFactory.ReviewRepo().FindByID(ctx, reviewID)
		if err != nil {
			if errors.Is(err, repository.ErrReviewNotFound) {
				return domainerrors.ErrReviewNotFound.WrapMessage("review to update not found")
			}

			return errors.Wrap(err, "failed to load review")
		}

		// Ownership failures look identical to missing reviews so callers
		// cannot probe other members' review IDs.
		if review.UserEmail != caller.Email {
			return domainerrors.ErrReviewNotFound.WrapMessage("review not owned by caller")
		}

		review.Text = input.Text
		review.Rating = input.Rating
		if err := repoFactory.ReviewRepo().Update(ctx, review); err != nil {
			return errors.Wrap(err, "failed to update review")
		}

		reviews, err := repoFactory.ReviewRepo().FindByMeal(ctx, review.MealID)
		if err != nil {
			return errors.Wrap(err, "failed to load reviews for recompute")
		}

		rating = averageRating(reviews)
		if err := repoFactory.MealRepo().SetRating(ctx, review.MealID, rating); err != nil {
			return errors.Wrap(err, "failed to write meal rating")
		}

		updated = review

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.publishEvent(ctx, &service.EngagementEvent{
		Type:      constants.EventReviewUpdated,
		MealID:    updated.MealID.String(),
		UserEmail: caller.Email,
		Rating:    rating,
	})

	return updated, nil
}

// DeleteReview removes a review and writes the meal's recomputed rating and
// exact remaining review count. Authors delete their own reviews; admins may
// delete any.
func (srv *engagementService) DeleteReview(ctx context.Context, caller usecase.Caller, reviewID uuid.UUID) error {
	var mealID uuid.UUID
	var rating float64
	var reviewsCount int
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		review, err := repoFactory.ReviewRepo().FindByID(ctx, reviewID)
		if err != nil {
			if errors.Is(err, repository.ErrReviewNotFound) {
				return domainerrors.ErrReviewNotFound.WrapMessage("review to delete not found")
			}

			return errors.Wrap(err, "failed to load review")
		}

		if review.UserEmail != caller.Email && !caller.IsAdmin() {
			return domainerrors.ErrReviewNotFound.WrapMessage("review not owned by caller")
		}

		if err := repoFactory.ReviewRepo().Delete(ctx, review.ID); err != nil {
			return errors.Wrap(err, "failed to delete review")
		}

		remaining, err := repoFactory.ReviewRepo().FindByMeal(ctx, review.MealID)
		if err != nil {
			return errors.Wrap(err, "failed to load reviews for recompute")
		}

		mealID = review.MealID
		rating = averageRating(remaining)
		reviewsCount = len(remaining)

		if err := repoFactory.MealRepo().SetRatingAndReviewsCount(ctx, review.MealID, rating, reviewsCount); err != nil {
			return errors.Wrap(err, "failed to write meal review counters")
		}

		return nil
	})
	if err != nil {
		return err
	}

	srv.publishEvent(ctx, &service.EngagementEvent{
		Type:         constants.EventReviewDeleted,
		MealID:       mealID.String(),
		UserEmail:    caller.Email,
		Rating:       rating,
		ReviewsCount: reviewsCount,
	})

	return nil
}

// ListAllReviews returns every review for the admin moderation view.
func (srv *engagementService) ListAllReviews(ctx context.Context) ([]*entity.Review, error) {
	reviews, err := srv.reviewRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	return reviews, nil
}

// ListCallerReviews returns the caller's authored reviews.
func (srv *engagementService) ListCallerReviews(ctx context.Context, caller usecase.Caller) ([]*entity.Review, error) {
	reviews, err := srv.reviewRepo.FindByUserEmail(ctx, caller.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list caller reviews")
	}

	return reviews, nil
}

// loadUser resolves the caller to their stored record so engagement rows
// carry a fresh name snapshot.
func (srv *engagementService) loadUser(ctx context.Context, caller usecase.Caller) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, caller.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("caller user not found")
		}

		return nil, errors.Wrap(err, "failed to load caller user")
	}

	return user, nil
}

// publishEvent emits the engagement event after the transaction committed.
// Publishing is best effort and never fails the mutation.
func (srv *engagementService) publishEvent(ctx context.Context, event *service.EngagementEvent) {
	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)
	if err := srv.eventPublisher.PublishEngagementEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish engagement event",
			slog.String("type", event.Type),
			slog.String("meal_id", event.MealID),
			slog.Any("error", err))
	}
}

// validateReviewInput enforces the presence and rating bounds shared by
// review creation and edits.
func validateReviewInput(text string, rating float64) error {
	if text == "" {
		return domainerrors.ErrReviewInvalid.WrapMessage("review text is required")
	}
	if rating < entity.MinReviewRating || rating > entity.MaxReviewRating {
		return domainerrors.ErrReviewInvalid.WrapMessage("rating out of bounds")
	}

	return nil
}

// averageRating computes the mean review rating rounded to one decimal.
// An empty slice yields zero, the unreviewed state.
func averageRating(reviews []*entity.Review) float64 {
	if len(reviews) == 0 {
		return 0
	}

	var sum float64
	for _, review := range reviews {
		sum += review.Rating
	}

	return math.Round(sum/float64(len(reviews))*10) / 10
}
