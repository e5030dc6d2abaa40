package model

import (
	"time"

	"github.com/google/uuid"
)

// LikeModel mirrors the 'meal_likes' table. The unique index on
// (meal_id, user_id) enforces one like per member per meal.
type LikeModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	MealID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_meal_likes_meal_user"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_meal_likes_meal_user"`
	UserName  string    `gorm:"type:varchar(100)"`
	UserEmail string    `gorm:"type:varchar(255);not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (LikeModel) TableName() string {
	return "meal_likes"
}
