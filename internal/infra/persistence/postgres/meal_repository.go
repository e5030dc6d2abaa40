// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"harmony/internal/domain/entity"
	domainerrors "harmony/internal/domain/errors"
	"harmony/internal/domain/repository"
	"harmony/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const defaultMealPageSize = 9

// mealRepository implements the domain.MealRepository interface using GORM.
type mealRepository struct {
	db *gorm.DB
}

// NewMealRepository is the constructor for mealRepository.
func NewMealRepository(db *gorm.DB) repository.MealRepository {
	return &mealRepository{db: db}
}

// Create persists a new meal.
func (repo *mealRepository) Create(ctx context.Context, meal *entity.Meal) error {
	mealM := fromMealDomain(meal)

	if err := repo.db.WithContext(ctx).Create(mealM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required meal information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create meal")
	}

	meal.ID = mealM.ID
	meal.CreatedAt = mealM.CreatedAt
	meal.UpdatedAt = mealM.UpdatedAt

	return nil
}

// FindByID retrieves a meal by its unique ID.
func (repo *mealRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Meal, error) {
	var mealM model.MealModel
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&mealM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMealNotFound
		}

		return nil, errors.Wrap(err, "failed to find meal by id")
	}

	return toMealDomain(&mealM), nil
}

// Update modifies a meal's descriptive fields. Derived counters are written
// as carried on the entity, so callers must load the meal first.
func (repo *mealRepository) Update(ctx context.Context, meal *entity.Meal) error {
	mealM := fromMealDomain(meal)

	result := repo.db.WithContext(ctx).
		Model(&model.MealModel{}).
		Where("id = ?", meal.ID).
		Updates(map[string]any{
			"title":             mealM.Title,
			"category":          mealM.Category,
			"price":             mealM.Price,
			"description":       mealM.Description,
			"ingredients":       mealM.Ingredients,
			"image_url":         mealM.ImageURL,
			"distributor_name":  mealM.DistributorName,
			"distributor_email": mealM.DistributorEmail,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update meal")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMealNotFound
	}

	return nil
}

// Delete removes a meal by ID.
func (repo *mealRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.MealModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete meal")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMealNotFound
	}

	return nil
}

// FindPage retrieves one page of meals matching the filter, newest first,
// plus the total match count.
func (repo *mealRepository) FindPage(ctx context.Context, filter *entity.MealFilter) ([]*entity.Meal, int64, error) {
	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 {
		limit = defaultMealPageSize
	}

	query := repo.db.WithContext(ctx).Model(&model.MealModel{})

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("title ILIKE ? OR category ILIKE ?", pattern, pattern)
	}
	if filter.Category != "" {
		query = query.Where("category ILIKE ?", filter.Category)
	}
	if filter.MinPrice > 0 {
		query = query.Where("price >= ?", filter.MinPrice)
	}
	if filter.MaxPrice > 0 {
		query = query.Where("price <= ?", filter.MaxPrice)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count meals")
	}

	var mealModels []*model.MealModel
	if err := query.
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&mealModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list meals")
	}

	meals := make([]*entity.Meal, 0, len(mealModels))
	for _, mealM := range mealModels {
		meals = append(meals, toMealDomain(mealM))
	}

	return meals, total, nil
}

// Categories returns the distinct category names in the catalog.
func (repo *mealRepository) Categories(ctx context.Context) ([]string, error) {
	var categories []string
	if err := repo.db.WithContext(ctx).
		Model(&model.MealModel{}).
		Distinct("category").
		Order("category ASC").
		Pluck("category", &categories).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list meal categories")
	}

	return categories, nil
}

// PriceRange returns the min and max price over the whole catalog.
func (repo *mealRepository) PriceRange(ctx context.Context) (entity.PriceRange, error) {
	var bounds struct {
		MinPrice float64
		MaxPrice float64
	}
	if err := repo.db.WithContext(ctx).
		Model(&model.MealModel{}).
		Select("COALESCE(MIN(price), 0) AS min_price, COALESCE(MAX(price), 0) AS max_price").
		Scan(&bounds).Error; err != nil {
		return entity.PriceRange{}, errors.Wrap(err, "failed to compute price range")
	}

	return entity.PriceRange{
		MinPrice: bounds.MinPrice,
		MaxPrice: bounds.MaxPrice,
	}, nil
}

// FindByDistributor retrieves all meals added by the given email, newest first.
func (repo *mealRepository) FindByDistributor(ctx context.Context, email string) ([]*entity.Meal, error) {
	var mealModels []*model.MealModel
	if err := repo.db.WithContext(ctx).
		Where("distributor_email = ?", email).
		Order("created_at DESC").
		Find(&mealModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list meals by distributor")
	}

	meals := make([]*entity.Meal, 0, len(mealModels))
	for _, mealM := range mealModels {
		meals = append(meals, toMealDomain(mealM))
	}

	return meals, nil
}

// FindTopByCategory retrieves meals of a category ordered by rating then likes.
func (repo *mealRepository) FindTopByCategory(ctx context.Context, category string, limit int) ([]*entity.Meal, error) {
	query := repo.db.WithContext(ctx).Model(&model.MealModel{})

	if category != "" {
		query = query.Where("category ILIKE ?", category)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	var mealModels []*model.MealModel
	if err := query.
		Order("rating DESC, likes DESC").
		Find(&mealModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list top meals")
	}

	meals := make([]*entity.Meal, 0, len(mealModels))
	for _, mealM := range mealModels {
		meals = append(meals, toMealDomain(mealM))
	}

	return meals, nil
}

// IncrementLikes adds delta to the meal's derived like counter.
func (repo *mealRepository) IncrementLikes(ctx context.Context, id uuid.UUID, delta int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.MealModel{}).
		Where("id = ?", id).
		Update("likes", gorm.Expr("likes + ?", delta))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to increment meal likes")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMealNotFound
	}

	return nil
}

// SetRating writes the recomputed average rating.
func (repo *mealRepository) SetRating(ctx context.Context, id uuid.UUID, rating float64) error {
	result := repo.db.WithContext(ctx).
		Model(&model.MealModel{}).
		Where("id = ?", id).
		Update("rating", rating)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to set meal rating")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMealNotFound
	}

	return nil
}

// SetRatingAndIncrementReviews writes the recomputed rating and bumps the
// review counter by one, as a single update.
func (repo *mealRepository) SetRatingAndIncrementReviews(ctx context.Context, id uuid.UUID, rating float64) error {
	result := repo.db.WithContext(ctx).
		Model(&model.MealModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"rating":        rating,
			"reviews_count": gorm.Expr("reviews_count + 1"),
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update meal review counters")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMealNotFound
	}

	return nil
}

// SetRatingAndReviewsCount writes both derived review fields exactly.
func (repo *mealRepository) SetRatingAndReviewsCount(ctx context.Context, id uuid.UUID, rating float64, count int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.MealModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"rating":        rating,
			"reviews_count": count,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update meal review counters")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMealNotFound
	}

	return nil
}

// Count returns the total number of meals.
func (repo *mealRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.MealModel{}).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count meals")
	}

	return count, nil
}

// CountByDistributor returns the number of meals added by the given email.
func (repo *mealRepository) CountByDistributor(ctx context.Context, email string) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.MealModel{}).
		Where("distributor_email = ?", email).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count meals by distributor")
	}

	return count, nil
}

// --- Mapper Functions ---

// toMealDomain converts a GORM MealModel to a domain Meal entity.
func toMealDomain(data *model.MealModel) *entity.Meal {
	if data == nil {
		return nil
	}

	return &entity.Meal{
		ID:               data.ID,
		Title:            data.Title,
		Category:         data.Category,
		Price:            data.Price,
		Description:      data.Description,
		Ingredients:      data.Ingredients,
		ImageURL:         data.ImageURL,
		DistributorName:  data.DistributorName,
		DistributorEmail: data.DistributorEmail,
		Likes:            data.Likes,
		Rating:           data.Rating,
		ReviewsCount:     data.ReviewsCount,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}

// fromMealDomain converts a domain Meal entity to a GORM MealModel.
func fromMealDomain(data *entity.Meal) *model.MealModel {
	if data == nil {
		return nil
	}

	return &model.MealModel{
		ID:               data.ID,
		Title:            data.Title,
		Category:         data.Category,
		Price:            data.Price,
		Description:      data.Description,
		Ingredients:      data.Ingredients,
		ImageURL:         data.ImageURL,
		DistributorName:  data.DistributorName,
		DistributorEmail: data.DistributorEmail,
		Likes:            data.Likes,
		Rating:           data.Rating,
		ReviewsCount:     data.ReviewsCount,
	}
}
