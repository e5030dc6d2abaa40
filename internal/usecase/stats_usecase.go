package usecase

import "context"

// AdminStatsOutput aggregates the platform totals for the admin dashboard.
type AdminStatsOutput struct {
	TotalUsers   int64   `json:"totalUsers"`
	TotalMeals   int64   `json:"totalMeals"`
	TotalReviews int64   `json:"totalReviews"`
	Revenue      float64 `json:"revenue"`    // Sum of payment amounts, 2-decimal.
	MealsAdded   int64   `json:"mealsAdded"` // Meals distributed by the calling admin.
}

// StatsUsecase defines the interface for the admin dashboard statistics.
type StatsUsecase interface {
	// AdminStats returns the platform totals plus the calling admin's own
	// meal contribution count.
	AdminStats(ctx context.Context, adminEmail string) (*AdminStatsOutput, error)
}
