package impl

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"strings"
	"time"

	deliverycontext "harmony/internal/delivery/context"
	"harmony/internal/domain/entity"
	domainerrors "harmony/internal/domain/errors"
	"harmony/internal/domain/repository"
	"harmony/internal/domain/service"
	"harmony/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// defaultCatalogPageSize matches the grid the client renders.
const defaultCatalogPageSize = 9

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	mealRepo   repository.MealRepository
	reviewRepo repository.ReviewRepository
	likeRepo   repository.LikeRepository
	userRepo   repository.UserRepository
	imageStore service.ImageStore
	logger     *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	MealRepo   repository.MealRepository
	ReviewRepo repository.ReviewRepository
	LikeRepo   repository.LikeRepository
	UserRepo   repository.UserRepository
	ImageStore service.ImageStore `optional:"true"`
	Logger     *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		mealRepo:   params.MealRepo,
		reviewRepo: params.ReviewRepo,
		likeRepo:   params.LikeRepo,
		userRepo:   params.UserRepo,
		imageStore: params.ImageStore,
		logger:     params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListMeals returns one filtered catalog page plus the categories and price
// range the client needs to render its filter controls.
func (srv *catalogService) ListMeals(ctx context.Context, filter *entity.MealFilter) (*entity.MealPage, error) {
	if filter == nil {
		filter = &entity.MealFilter{}
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = defaultCatalogPageSize
	}

	meals, total, err := srv.mealRepo.FindPage(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list meals")
	}

	categories, err := srv.mealRepo.Categories(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	priceRange, err := srv.mealRepo.PriceRange(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load price range")
	}

	totalPages := int((total + int64(filter.Limit) - 1) / int64(filter.Limit))

	return &entity.MealPage{
		Meals:       meals,
		TotalPages:  totalPages,
		CurrentPage: filter.Page,
		TotalMeals:  total,
		Categories:  categories,
		PriceRange:  priceRange,
	}, nil
}

// GetMealDetail returns a meal with its reviews, newest first, plus the
// caller's like state when a bearer token accompanied the request.
func (srv *catalogService) GetMealDetail(ctx context.Context, id uuid.UUID, caller *usecase.Caller) (*usecase.MealDetailOutput, error) {
	meal, err := srv.mealRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrMealNotFound) {
			return nil, domainerrors.ErrMealNotFound.WrapMessage("meal detail not found")
		}

		return nil, errors.Wrap(err, "failed to load meal")
	}

	reviews, err := srv.reviewRepo.FindByMeal(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load meal reviews")
	}

	liked := false
	if caller != nil {
		liked, err = srv.likeRepo.Exists(ctx, id, caller.UserID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to check like state")
		}
	}

	return &usecase.MealDetailOutput{
		Meal:    meal,
		Reviews: reviews,
		Liked:   liked,
	}, nil
}

// TopMealsByCategory returns meals ordered by rating then likes. The literal
// category "all" disables the filter.
func (srv *catalogService) TopMealsByCategory(ctx context.Context, category string, limit int) ([]*entity.Meal, error) {
	if strings.EqualFold(category, "all") {
		category = ""
	}

	meals, err := srv.mealRepo.FindTopByCategory(ctx, category, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list top meals")
	}

	return meals, nil
}

// AddMeal publishes a meal attributed to the calling admin, with all derived
// counters at zero.
func (srv *catalogService) AddMeal(ctx context.Context, caller usecase.Caller, input *usecase.AddMealInput) (*entity.Meal, error) {
	distributor, err := srv.userRepo.FindByID(ctx, caller.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("distributor not found")
		}

		return nil, errors.Wrap(err, "failed to load distributor")
	}

	now := time.Now()
	meal := &entity.Meal{
		ID:               uuid.New(),
		Title:            input.Title,
		Category:         input.Category,
		Price:            input.Price,
		Description:      input.Description,
		Ingredients:      input.Ingredients,
		ImageURL:         input.ImageURL,
		DistributorName:  distributor.Name,
		DistributorEmail: distributor.Email,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := srv.mealRepo.Create(ctx, meal); err != nil {
		return nil, errors.Wrap(err, "failed to create meal")
	}

	srv.log(ctx).Info("Meal published",
		slog.String("meal_id", meal.ID.String()),
		slog.String("title", meal.Title),
		slog.String("distributor", meal.DistributorEmail))

	return meal, nil
}

// UpdateMeal rewrites a meal's descriptive fields, leaving the derived
// counters and attribution untouched.
func (srv *catalogService) UpdateMeal(ctx context.Context, id uuid.UUID, input *usecase.UpdateMealInput) (*entity.Meal, error) {
	meal, err := srv.mealRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrMealNotFound) {
			return nil, domainerrors.ErrMealNotFound.WrapMessage("meal to update not found")
		}

		return nil, errors.Wrap(err, "failed to load meal")
	}

	meal.Title = input.Title
	meal.Category = input.Category
	meal.Price = input.Price
	meal.Description = input.Description
	meal.Ingredients = input.Ingredients
	meal.ImageURL = input.ImageURL
	meal.UpdatedAt = time.Now()

	if err := srv.mealRepo.Update(ctx, meal); err != nil {
		if errors.Is(err, repository.ErrMealNotFound) {
			return nil, domainerrors.ErrMealNotFound.WrapMessage("meal to update not found")
		}

		return nil, errors.Wrap(err, "failed to update meal")
	}

	return meal, nil
}

// DeleteMeal removes a meal from the catalog.
func (srv *catalogService) DeleteMeal(ctx context.Context, id uuid.UUID) error {
	if err := srv.mealRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrMealNotFound) {
			return domainerrors.ErrMealNotFound.WrapMessage("meal to delete not found")
		}

		return errors.Wrap(err, "failed to delete meal")
	}

	srv.log(ctx).Info("Meal deleted", slog.String("meal_id", id.String()))

	return nil
}

// MealsByDistributor returns the meals added by the given staff email.
func (srv *catalogService) MealsByDistributor(ctx context.Context, email string) ([]*entity.Meal, error) {
	meals, err := srv.mealRepo.FindByDistributor(ctx, email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list distributor meals")
	}

	return meals, nil
}

// UploadImage stores a meal image under a collision-free name and returns
// its public URL.
func (srv *catalogService) UploadImage(ctx context.Context, input *usecase.UploadImageInput) (string, error) {
	if srv.imageStore == nil {
		return "", domainerrors.ErrImageStorageUnavailable.WrapMessage("image store not configured")
	}

	name := fmt.Sprintf("%s%s", uuid.NewString(), path.Ext(input.FileName))
	url, err := srv.imageStore.Save(ctx, name, input.ContentType, input.Content)
	if err != nil {
		return "", errors.Wrap(err, "failed to store image")
	}

	srv.log(ctx).Info("Image uploaded", slog.String("name", name))

	return url, nil
}
