package model

import (
	"time"

	"github.com/google/uuid"
)

// PaymentModel mirrors the 'payments' table. Each row records a completed
// membership purchase.
type PaymentModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserEmail     string    `gorm:"type:varchar(255);not null;index"`
	Amount        float64   `gorm:"type:decimal(10,2);not null"`
	Package       string    `gorm:"type:varchar(20);not null"`
	TransactionID string    `gorm:"type:varchar(255);not null"`
	Status        string    `gorm:"type:varchar(20);not null;default:'succeeded'"`
	CreatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (PaymentModel) TableName() string {
	return "payments"
}
