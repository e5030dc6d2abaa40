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

// likeRepository implements the domain.LikeRepository interface using GORM.
type likeRepository struct {
	db *gorm.DB
}

// NewLikeRepository is the constructor for likeRepository.
func NewLikeRepository(db *gorm.DB) repository.LikeRepository {
	return &likeRepository{db: db}
}

// Create persists a new like. The unique index on (meal_id, user_id) is the
// final guard against double likes under concurrency.
func (repo *likeRepository) Create(ctx context.Context, like *entity.Like) error {
	likeM := fromLikeDomain(like)

	if err := repo.db.WithContext(ctx).Create(likeM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateLike
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create like")
	}

	like.ID = likeM.ID
	like.CreatedAt = likeM.CreatedAt

	return nil
}

// Exists reports whether a like exists for the (meal, user) pair.
func (repo *likeRepository) Exists(ctx context.Context, mealID, userID uuid.UUID) (bool, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.LikeModel{}).
		Where("meal_id = ? AND user_id = ?", mealID, userID).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check like existence")
	}

	return count > 0, nil
}

// --- Mapper Functions ---

// fromLikeDomain converts a domain Like entity to a GORM LikeModel.
func fromLikeDomain(data *entity.Like) *model.LikeModel {
	if data == nil {
		return nil
	}

	return &model.LikeModel{
		ID:        data.ID,
		MealID:    data.MealID,
		UserID:    data.UserID,
		UserName:  data.UserName,
		UserEmail: data.UserEmail,
	}
}
