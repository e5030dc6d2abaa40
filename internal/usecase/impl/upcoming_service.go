package impl

import (
	"context"
	"log/slog"
	"slices"
	"time"

	deliverycontext "harmony/internal/delivery/context"
	"harmony/internal/domain/entity"
	domainerrors "harmony/internal/domain/errors"
	"harmony/internal/domain/repository"
	"harmony/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// upcomingService implements the UpcomingUsecase interface.
type upcomingService struct {
	txManager    repository.TransactionManager
	upcomingRepo repository.UpcomingMealRepository
	userRepo     repository.UserRepository
	logger       *slog.Logger
}

// UpcomingServiceParams holds dependencies for UpcomingService, injected by Fx.
type UpcomingServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UpcomingRepo repository.UpcomingMealRepository
	UserRepo     repository.UserRepository
	Logger       *slog.Logger
}

// NewUpcomingService is the constructor for upcomingService.
func NewUpcomingService(params UpcomingServiceParams) usecase.UpcomingUsecase {
	return &upcomingService{
		txManager:    params.TxManager,
		upcomingRepo: params.UpcomingRepo,
		userRepo:     params.UserRepo,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *upcomingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListUpcoming returns all staged meals, most liked first.
func (srv *upcomingService) ListUpcoming(ctx context.Context) ([]*entity.UpcomingMeal, error) {
	meals, err := srv.upcomingRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list upcoming meals")
	}

	return meals, nil
}

// AddUpcoming stages a meal attributed to the calling admin, with no
// interest recorded yet.
func (srv *upcomingService) AddUpcoming(ctx context.Context, caller usecase.Caller, input *usecase.AddUpcomingMealInput) (*entity.UpcomingMeal, error) {
	distributor, err := srv.userRepo.FindByID(ctx, caller.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("distributor not found")
		}

		return nil, errors.Wrap(err, "failed to load distributor")
	}

	meal := &entity.UpcomingMeal{
		ID:               uuid.New(),
		Title:            input.Title,
		Category:         input.Category,
		Price:            input.Price,
		Description:      input.Description,
		Ingredients:      input.Ingredients,
		ImageURL:         input.ImageURL,
		DistributorName:  distributor.Name,
		DistributorEmail: distributor.Email,
		Likes:            0,
		LikedBy:          []string{},
		CreatedAt:        time.Now(),
	}

	if err := srv.upcomingRepo.Create(ctx, meal); err != nil {
		return nil, errors.Wrap(err, "failed to stage upcoming meal")
	}

	srv.log(ctx).Info("Upcoming meal staged",
		slog.String("upcoming_id", meal.ID.String()),
		slog.String("title", meal.Title))

	return meal, nil
}

// LikeUpcoming registers a premium member's interest in a staged meal.
// The tier gate runs before the existence check, so base-tier callers get a
// premium-required failure even for unknown IDs.
func (srv *upcomingService) LikeUpcoming(ctx context.Context, caller usecase.Caller, id uuid.UUID) (*entity.UpcomingMeal, error) {
	user, err := srv.userRepo.FindByID(ctx, caller.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("caller user not found")
		}

		return nil, errors.Wrap(err, "failed to load caller user")
	}

	if !user.Tier.IsPremium() {
		return nil, domainerrors.ErrPremiumRequired.WrapMessage("base tier cannot like upcoming meals")
	}

	var updated *entity.UpcomingMeal
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		meal, err := repoFactory.UpcomingRepo().FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrUpcomingMealNotFound) {
				return domainerrors.ErrUpcomingMealNotFound.WrapMessage("upcoming meal to like not found")
			}

			return errors.Wrap(err, "failed to load upcoming meal")
		}

		if meal.LikedByUser(user.Email) {
			return domainerrors.ErrUpcomingAlreadyLiked.WrapMessage("interest already recorded")
		}

		meal.LikedBy = append(meal.LikedBy, user.Email)
		meal.Likes = len(meal.LikedBy)
		if err := repoFactory.UpcomingRepo().Update(ctx, meal); err != nil {
			return errors.Wrap(err, "failed to record interest")
		}

		updated = meal

		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// UnlikeUpcoming withdraws the caller's interest. No tier check applies, so
// members downgraded after liking can still withdraw. Withdrawing an
// interest that was never recorded is a no-op.
func (srv *upcomingService) UnlikeUpcoming(ctx context.Context, caller usecase.Caller, id uuid.UUID) (*entity.UpcomingMeal, error) {
	var updated *entity.UpcomingMeal
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		meal, err := repoFactory.UpcomingRepo().FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrUpcomingMealNotFound) {
				return domainerrors.ErrUpcomingMealNotFound.WrapMessage("upcoming meal to unlike not found")
			}

			return errors.Wrap(err, "failed to load upcoming meal")
		}

		if meal.LikedByUser(caller.Email) {
			meal.LikedBy = slices.DeleteFunc(meal.LikedBy, func(email string) bool {
				return email == caller.Email
			})
			meal.Likes = len(meal.LikedBy)
			if err := repoFactory.UpcomingRepo().Update(ctx, meal); err != nil {
				return errors.Wrap(err, "failed to withdraw interest")
			}
		}

		updated = meal

		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// PublishUpcoming moves a staged meal into the catalog. The insert and the
// staged-record delete commit together, and the new catalog meal starts
// with every derived counter at zero regardless of gathered interest.
func (srv *upcomingService) PublishUpcoming(ctx context.Context, id uuid.UUID) (*entity.Meal, error) {
	var published *entity.Meal
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		staged, err := repoFactory.UpcomingRepo().FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrUpcomingMealNotFound) {
				return domainerrors.ErrUpcomingMealNotFound.WrapMessage("upcoming meal to publish not found")
			}

			return errors.Wrap(err, "failed to load upcoming meal")
		}

		published = staged.ToMeal(time.Now())
		if err := repoFactory.MealRepo().Create(ctx, published); err != nil {
			return errors.Wrap(err, "failed to publish meal")
		}

		if err := repoFactory.UpcomingRepo().Delete(ctx, staged.ID); err != nil {
			return errors.Wrap(err, "failed to remove staged meal")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Upcoming meal published",
		slog.String("upcoming_id", id.String()),
		slog.String("meal_id", published.ID.String()))

	return published, nil
}

// DeleteUpcoming discards a staged meal.
func (srv *upcomingService) DeleteUpcoming(ctx context.Context, id uuid.UUID) error {
	if err := srv.upcomingRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrUpcomingMealNotFound) {
			return domainerrors.ErrUpcomingMealNotFound.WrapMessage("upcoming meal to delete not found")
		}

		return errors.Wrap(err, "failed to delete upcoming meal")
	}

	srv.log(ctx).Info("Upcoming meal deleted", slog.String("upcoming_id", id.String()))

	return nil
}
