package model

import (
	"time"

	"github.com/google/uuid"
)

// RequestModel mirrors the 'meal_requests' table. It carries a denormalized
// snapshot of the requested meal plus mirrors of its derived counters.
type RequestModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	MealID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_meal_requests_meal_user"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_meal_requests_meal_user"`
	UserName     string    `gorm:"type:varchar(100)"`
	UserEmail    string    `gorm:"type:varchar(255);not null;index"`
	Title        string    `gorm:"type:varchar(255);not null"`
	Category     string    `gorm:"type:varchar(100)"`
	Price        float64   `gorm:"type:decimal(10,2);not null"`
	ImageURL     string    `gorm:"type:text"`
	Likes        int       `gorm:"not null;default:0"`
	Rating       float64   `gorm:"type:decimal(3,1);not null;default:0"`
	ReviewsCount int       `gorm:"not null;default:0"`
	Status       string    `gorm:"type:varchar(20);not null;default:'pending';index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (RequestModel) TableName() string {
	return "meal_requests"
}
