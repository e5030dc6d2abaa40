package model

import (
	"time"

	"github.com/google/uuid"
)

// MealModel mirrors the 'meals' table. The likes, rating and reviews_count
// columns are derived counters maintained by the engagement aggregation.
type MealModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Title            string    `gorm:"type:varchar(255);not null"`
	Category         string    `gorm:"type:varchar(100);not null;index"`
	Price            float64   `gorm:"type:decimal(10,2);not null"`
	Description      string    `gorm:"type:text"`
	Ingredients      []string  `gorm:"type:jsonb;serializer:json"`
	ImageURL         string    `gorm:"type:text"`
	DistributorName  string    `gorm:"type:varchar(100)"`
	DistributorEmail string    `gorm:"type:varchar(255);index"`
	Likes            int       `gorm:"not null;default:0"`
	Rating           float64   `gorm:"type:decimal(3,1);not null;default:0"`
	ReviewsCount     int       `gorm:"not null;default:0"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (MealModel) TableName() string {
	return "meals"
}
