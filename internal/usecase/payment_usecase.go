package usecase

import (
	"context"

	"harmony/internal/domain/entity"
)

// --- Input DTOs ---

// CreatePaymentIntentInput carries the charge amount in the platform
// currency; the gateway receives it in cents.
type CreatePaymentIntentInput struct {
	Price float64
}

// RecordPaymentInput defines a completed membership purchase.
type RecordPaymentInput struct {
	Amount        float64
	Package       string // Target membership tier id.
	TransactionID string // Provider-side transaction reference.
}

// --- Output DTOs ---

// CreatePaymentIntentOutput returns the client secret the browser uses to
// confirm the payment.
type CreatePaymentIntentOutput struct {
	ClientSecret string
}

// PaymentUsecase defines the interface for membership payments.
type PaymentUsecase interface {
	// CreatePaymentIntent opens a payment with the processor. Unavailable
	// when the processor is not configured.
	CreatePaymentIntent(ctx context.Context, input *CreatePaymentIntentInput) (*CreatePaymentIntentOutput, error)

	// RecordPayment persists the completed purchase and upgrades the
	// caller's membership tier, atomically.
	RecordPayment(ctx context.Context, caller Caller, input *RecordPaymentInput) (*entity.Payment, error)

	// History returns the caller's payment history, newest first.
	History(ctx context.Context, caller Caller) ([]*entity.Payment, error)
}
