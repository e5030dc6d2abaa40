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

// upcomingMealRepository implements the domain.UpcomingMealRepository interface using GORM.
type upcomingMealRepository struct {
	db *gorm.DB
}

// NewUpcomingMealRepository is the constructor for upcomingMealRepository.
func NewUpcomingMealRepository(db *gorm.DB) repository.UpcomingMealRepository {
	return &upcomingMealRepository{db: db}
}

// Create persists a new staged meal.
func (repo *upcomingMealRepository) Create(ctx context.Context, meal *entity.UpcomingMeal) error {
	mealM := fromUpcomingMealDomain(meal)

	if err := repo.db.WithContext(ctx).Create(mealM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required upcoming meal information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create upcoming meal")
	}

	meal.ID = mealM.ID
	meal.CreatedAt = mealM.CreatedAt

	return nil
}

// FindByID retrieves a staged meal by its unique ID.
func (repo *upcomingMealRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.UpcomingMeal, error) {
	var mealM model.UpcomingMealModel
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&mealM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUpcomingMealNotFound
		}

		return nil, errors.Wrap(err, "failed to find upcoming meal by id")
	}

	return toUpcomingMealDomain(&mealM), nil
}

// FindAll retrieves all staged meals, most liked first.
func (repo *upcomingMealRepository) FindAll(ctx context.Context) ([]*entity.UpcomingMeal, error) {
	var mealModels []*model.UpcomingMealModel
	if err := repo.db.WithContext(ctx).
		Order("likes DESC, created_at DESC").
		Find(&mealModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list upcoming meals")
	}

	meals := make([]*entity.UpcomingMeal, 0, len(mealModels))
	for _, mealM := range mealModels {
		meals = append(meals, toUpcomingMealDomain(mealM))
	}

	return meals, nil
}

// Update rewrites a staged meal, including its likedBy set and like count.
func (repo *upcomingMealRepository) Update(ctx context.Context, meal *entity.UpcomingMeal) error {
	mealM := fromUpcomingMealDomain(meal)

	result := repo.db.WithContext(ctx).
		Model(&model.UpcomingMealModel{}).
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
			"likes":             mealM.Likes,
			"liked_by":          mealM.LikedBy,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update upcoming meal")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUpcomingMealNotFound
	}

	return nil
}

// Delete removes a staged meal by ID.
func (repo *upcomingMealRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.UpcomingMealModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete upcoming meal")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUpcomingMealNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toUpcomingMealDomain converts a GORM UpcomingMealModel to a domain UpcomingMeal entity.
func toUpcomingMealDomain(data *model.UpcomingMealModel) *entity.UpcomingMeal {
	if data == nil {
		return nil
	}

	return &entity.UpcomingMeal{
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
		LikedBy:          data.LikedBy,
		CreatedAt:        data.CreatedAt,
	}
}

// fromUpcomingMealDomain converts a domain UpcomingMeal entity to a GORM UpcomingMealModel.
func fromUpcomingMealDomain(data *entity.UpcomingMeal) *model.UpcomingMealModel {
	if data == nil {
		return nil
	}

	return &model.UpcomingMealModel{
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
		LikedBy:          data.LikedBy,
	}
}
