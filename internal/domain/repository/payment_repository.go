// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"harmony/internal/domain/entity"
)

// PaymentRepository defines the interface for payment-record persistence.
// Payment rows are append-only; there are no update or delete operations.
type PaymentRepository interface {
	// Create persists a new payment record.
	Create(ctx context.Context, payment *entity.Payment) error

	// FindByUserEmail retrieves the payment history for a user, newest first.
	FindByUserEmail(ctx context.Context, email string) ([]*entity.Payment, error)

	// TotalRevenue sums the amount over all payment records.
	TotalRevenue(ctx context.Context) (float64, error)
}
