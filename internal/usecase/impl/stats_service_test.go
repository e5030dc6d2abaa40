package impl

import (
	"context"
	"testing"

	mockRepo "harmony/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsService_AdminStats(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	mealRepo := mockRepo.NewMockMealRepository(t)
	reviewRepo := mockRepo.NewMockReviewRepository(t)
	paymentRepo := mockRepo.NewMockPaymentRepository(t)
	svc := NewStatsService(StatsServiceParams{
		UserRepo:    userRepo,
		MealRepo:    mealRepo,
		ReviewRepo:  reviewRepo,
		PaymentRepo: paymentRepo,
		Logger:      testLogger(),
	})

	ctx := context.Background()
	adminEmail := "staff@example.com"

	userRepo.EXPECT().Count(ctx).Return(int64(120), nil)
	mealRepo.EXPECT().Count(ctx).Return(int64(42), nil)
	reviewRepo.EXPECT().Count(ctx).Return(int64(317), nil)
	paymentRepo.EXPECT().TotalRevenue(ctx).Return(12499.999, nil)
	mealRepo.EXPECT().CountByDistributor(ctx, adminEmail).Return(int64(7), nil)

	stats, err := svc.AdminStats(ctx, adminEmail)
	require.NoError(t, err)
	assert.Equal(t, int64(120), stats.TotalUsers)
	assert.Equal(t, int64(42), stats.TotalMeals)
	assert.Equal(t, int64(317), stats.TotalReviews)
	assert.Equal(t, 12500.0, stats.Revenue)
	assert.Equal(t, int64(7), stats.MealsAdded)
}

func TestStatsService_AdminStats_RevenueFailure(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	mealRepo := mockRepo.NewMockMealRepository(t)
	reviewRepo := mockRepo.NewMockReviewRepository(t)
	paymentRepo := mockRepo.NewMockPaymentRepository(t)
	svc := NewStatsService(StatsServiceParams{
		UserRepo:    userRepo,
		MealRepo:    mealRepo,
		ReviewRepo:  reviewRepo,
		PaymentRepo: paymentRepo,
		Logger:      testLogger(),
	})

	ctx := context.Background()

	userRepo.EXPECT().Count(ctx).Return(int64(120), nil)
	mealRepo.EXPECT().Count(ctx).Return(int64(42), nil)
	reviewRepo.EXPECT().Count(ctx).Return(int64(317), nil)
	paymentRepo.EXPECT().TotalRevenue(ctx).Return(float64(0), errors.New("query timeout"))

	_, err := svc.AdminStats(ctx, "staff@example.com")
	require.Error(t, err)
}
