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

// requestRepository implements the domain.RequestRepository interface using GORM.
type requestRepository struct {
	db *gorm.DB
}

// NewRequestRepository is the constructor for requestRepository.
func NewRequestRepository(db *gorm.DB) repository.RequestRepository {
	return &requestRepository{db: db}
}

// Create persists a new meal request.
func (repo *requestRepository) Create(ctx context.Context, request *entity.MealRequest) error {
	requestM := fromRequestDomain(request)

	if err := repo.db.WithContext(ctx).Create(requestM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateRequest
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create meal request")
	}

	request.ID = requestM.ID
	request.CreatedAt = requestM.CreatedAt
	request.UpdatedAt = requestM.UpdatedAt

	return nil
}

// FindByMealAndUser retrieves the request a user holds for a meal, if any.
// Any status counts; one request per meal per member is a lifetime rule.
func (repo *requestRepository) FindByMealAndUser(ctx context.Context, mealID, userID uuid.UUID) (*entity.MealRequest, error) {
	var requestM model.RequestModel
	if err := repo.db.WithContext(ctx).
		Where("meal_id = ? AND user_id = ?", mealID, userID).
		First(&requestM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRequestNotFound
		}

		return nil, errors.Wrap(err, "failed to find request by meal and user")
	}

	return toRequestDomain(&requestM), nil
}

// FindByUserEmail retrieves all requests owned by the given email, any status.
func (repo *requestRepository) FindByUserEmail(ctx context.Context, email string) ([]*entity.MealRequest, error) {
	var requestModels []*model.RequestModel
	if err := repo.db.WithContext(ctx).
		Where("user_email = ?", email).
		Order("created_at DESC").
		Find(&requestModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list requests by user")
	}

	return toRequestDomainSlice(requestModels), nil
}

// FindByID retrieves a request by its unique ID.
func (repo *requestRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.MealRequest, error) {
	var requestM model.RequestModel
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&requestM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRequestNotFound
		}

		return nil, errors.Wrap(err, "failed to find request by id")
	}

	return toRequestDomain(&requestM), nil
}

// Search retrieves all requests, any status, matching the optional
// case-insensitive substring term on the snapshot title or requester name.
func (repo *requestRepository) Search(ctx context.Context, term string) ([]*entity.MealRequest, error) {
	query := repo.db.WithContext(ctx).Model(&model.RequestModel{})

	if term != "" {
		pattern := "%" + term + "%"
		query = query.Where("title ILIKE ? OR user_name ILIKE ?", pattern, pattern)
	}

	var requestModels []*model.RequestModel
	if err := query.
		Order("created_at DESC").
		Find(&requestModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to search requests")
	}

	return toRequestDomainSlice(requestModels), nil
}

// DeletePending removes the request only when it matches (id, owner email,
// status pending). Scoping the delete keeps cancellation race-free.
func (repo *requestRepository) DeletePending(ctx context.Context, id uuid.UUID, ownerEmail string) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND user_email = ? AND status = ?", id, ownerEmail, string(entity.RequestStatusPending)).
		Delete(&model.RequestModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete pending request")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRequestNotFound
	}

	return nil
}

// MarkDelivered transitions a pending request to delivered.
func (repo *requestRepository) MarkDelivered(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.RequestModel{}).
		Where("id = ? AND status = ?", id, string(entity.RequestStatusPending)).
		Update("status", string(entity.RequestStatusDelivered))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark request delivered")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRequestNotFound
	}

	return nil
}

// MirrorLikeAdded bumps the like mirror on every request referencing the meal.
func (repo *requestRepository) MirrorLikeAdded(ctx context.Context, mealID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.RequestModel{}).
		Where("meal_id = ?", mealID).
		Update("likes", gorm.Expr("likes + 1")).Error; err != nil {
		return errors.Wrap(err, "failed to mirror like to requests")
	}

	return nil
}

// MirrorReviewAdded sets the rating mirror and bumps the review-count mirror
// on every request referencing the meal.
func (repo *requestRepository) MirrorReviewAdded(ctx context.Context, mealID uuid.UUID, rating float64) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.RequestModel{}).
		Where("meal_id = ?", mealID).
		Updates(map[string]any{
			"rating":        rating,
			"reviews_count": gorm.Expr("reviews_count + 1"),
		}).Error; err != nil {
		return errors.Wrap(err, "failed to mirror review to requests")
	}

	return nil
}

// --- Mapper Functions ---

// toRequestDomain converts a GORM RequestModel to a domain MealRequest entity.
func toRequestDomain(data *model.RequestModel) *entity.MealRequest {
	if data == nil {
		return nil
	}

	return &entity.MealRequest{
		ID:           data.ID,
		MealID:       data.MealID,
		UserID:       data.UserID,
		UserName:     data.UserName,
		UserEmail:    data.UserEmail,
		Title:        data.Title,
		Category:     data.Category,
		Price:        data.Price,
		ImageURL:     data.ImageURL,
		Likes:        data.Likes,
		Rating:       data.Rating,
		ReviewsCount: data.ReviewsCount,
		Status:       entity.RequestStatus(data.Status),
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func toRequestDomainSlice(models []*model.RequestModel) []*entity.MealRequest {
	requests := make([]*entity.MealRequest, 0, len(models))
	for _, requestM := range models {
		requests = append(requests, toRequestDomain(requestM))
	}

	return requests
}

// fromRequestDomain converts a domain MealRequest entity to a GORM RequestModel.
func fromRequestDomain(data *entity.MealRequest) *model.RequestModel {
	if data == nil {
		return nil
	}

	return &model.RequestModel{
		ID:           data.ID,
		MealID:       data.MealID,
		UserID:       data.UserID,
		UserName:     data.UserName,
		UserEmail:    data.UserEmail,
		Title:        data.Title,
		Category:     data.Category,
		Price:        data.Price,
		ImageURL:     data.ImageURL,
		Likes:        data.Likes,
		Rating:       data.Rating,
		ReviewsCount: data.ReviewsCount,
		Status:       string(data.Status),
	}
}
