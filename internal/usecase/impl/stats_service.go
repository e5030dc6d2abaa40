package impl

import (
	"context"
	"log/slog"
	"math"

	deliverycontext "harmony/internal/delivery/context"
	"harmony/internal/domain/repository"
	"harmony/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// statsService implements the StatsUsecase interface.
type statsService struct {
	userRepo    repository.UserRepository
	mealRepo    repository.MealRepository
	reviewRepo  repository.ReviewRepository
	paymentRepo repository.PaymentRepository
	logger      *slog.Logger
}

// StatsServiceParams holds dependencies for StatsService, injected by Fx.
type StatsServiceParams struct {
	fx.In

	UserRepo    repository.UserRepository
	MealRepo    repository.MealRepository
	ReviewRepo  repository.ReviewRepository
	PaymentRepo repository.PaymentRepository
	Logger      *slog.Logger
}

// NewStatsService is the constructor for statsService.
func NewStatsService(params StatsServiceParams) usecase.StatsUsecase {
	return &statsService{
		userRepo:    params.UserRepo,
		mealRepo:    params.MealRepo,
		reviewRepo:  params.ReviewRepo,
		paymentRepo: params.PaymentRepo,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *statsService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AdminStats aggregates the dashboard totals plus the calling admin's own
// meal contribution count.
func (srv *statsService) AdminStats(ctx context.Context, adminEmail string) (*usecase.AdminStatsOutput, error) {
	totalUsers, err := srv.userRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count users")
	}

	totalMeals, err := srv.mealRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count meals")
	}

	totalReviews, err := srv.reviewRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count reviews")
	}

	revenue, err := srv.paymentRepo.TotalRevenue(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sum revenue")
	}

	mealsAdded, err := srv.mealRepo.CountByDistributor(ctx, adminEmail)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count admin meals")
	}

	return &usecase.AdminStatsOutput{
		TotalUsers:   totalUsers,
		TotalMeals:   totalMeals,
		TotalReviews: totalReviews,
		Revenue:      math.Round(revenue*100) / 100,
		MealsAdded:   mealsAdded,
	}, nil
}
