package model

import (
	"time"

	"github.com/google/uuid"
)

// ReviewModel mirrors the 'reviews' table. Reviews remain the source of truth
// for the derived rating columns on meals and meal_requests.
type ReviewModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	MealID    uuid.UUID `gorm:"type:uuid;not null;index"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	UserName  string    `gorm:"type:varchar(100)"`
	UserEmail string    `gorm:"type:varchar(255);not null;index"`
	Text      string    `gorm:"type:text"`
	Rating    float64   `gorm:"type:decimal(3,1);not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "reviews"
}
