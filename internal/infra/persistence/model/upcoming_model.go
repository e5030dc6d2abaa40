package model

import (
	"time"

	"github.com/google/uuid"
)

// UpcomingMealModel mirrors the 'upcoming_meals' table. The liked_by column
// stores the interested member emails as a JSONB array; likes must equal its
// length.
type UpcomingMealModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Title            string    `gorm:"type:varchar(255);not null"`
	Category         string    `gorm:"type:varchar(100);not null"`
	Price            float64   `gorm:"type:decimal(10,2);not null"`
	Description      string    `gorm:"type:text"`
	Ingredients      []string  `gorm:"type:jsonb;serializer:json"`
	ImageURL         string    `gorm:"type:text"`
	DistributorName  string    `gorm:"type:varchar(100)"`
	DistributorEmail string    `gorm:"type:varchar(255)"`
	Likes            int       `gorm:"not null;default:0"`
	LikedBy          []string  `gorm:"type:jsonb;serializer:json"`
	CreatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (UpcomingMealModel) TableName() string {
	return "upcoming_meals"
}
