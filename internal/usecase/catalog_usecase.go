package usecase

import (
	"context"
	"io"

	"harmony/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// AddMealInput defines the data required to publish a meal.
type AddMealInput struct {
	Title       string
	Category    string
	Price       float64
	Description string
	Ingredients []string
	ImageURL    string
}

// UpdateMealInput defines the descriptive fields an admin may change.
// Derived counters and the creation timestamp are never touched.
type UpdateMealInput struct {
	Title       string
	Category    string
	Price       float64
	Description string
	Ingredients []string
	ImageURL    string
}

// UploadImageInput carries one multipart image upload.
type UploadImageInput struct {
	FileName    string
	ContentType string
	Content     io.Reader
}

// --- Output DTOs ---

// MealDetailOutput is a meal with its embedded reviews and the caller's
// like state.
type MealDetailOutput struct {
	Meal    *entity.Meal
	Reviews []*entity.Review
	Liked   bool // Whether the optional bearer caller has liked this meal.
}

// CatalogUsecase defines the interface for meal catalog operations.
type CatalogUsecase interface {
	// ListMeals returns one filtered page of the catalog plus listing metadata.
	ListMeals(ctx context.Context, filter *entity.MealFilter) (*entity.MealPage, error)

	// GetMealDetail returns a meal with its reviews and, when a caller is
	// present, whether that caller has liked it.
	GetMealDetail(ctx context.Context, id uuid.UUID, caller *Caller) (*MealDetailOutput, error)

	// TopMealsByCategory returns meals ordered by rating then likes.
	// An empty or "all" category means no filter; limit 0 means no limit.
	TopMealsByCategory(ctx context.Context, category string, limit int) ([]*entity.Meal, error)

	// AddMeal publishes a meal with all derived counters at zero. Admin only.
	AddMeal(ctx context.Context, caller Caller, input *AddMealInput) (*entity.Meal, error)

	// UpdateMeal modifies a meal's descriptive fields. Admin only.
	UpdateMeal(ctx context.Context, id uuid.UUID, input *UpdateMealInput) (*entity.Meal, error)

	// DeleteMeal removes a meal from the catalog. Admin only.
	DeleteMeal(ctx context.Context, id uuid.UUID) error

	// MealsByDistributor returns the meals added by the given email.
	MealsByDistributor(ctx context.Context, email string) ([]*entity.Meal, error)

	// UploadImage stores a meal image and returns its public URL.
	UploadImage(ctx context.Context, input *UploadImageInput) (string, error)
}
