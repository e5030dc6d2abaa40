package service

import "context"

// PaymentIntent is the provider-side handle for an in-flight payment.
// The client completes the payment against ClientSecret.
type PaymentIntent struct {
	ID           string // Provider intent identifier.
	ClientSecret string // Secret the browser uses to confirm the payment.
}

// PaymentGateway defines the interface to the external payment processor.
// A nil gateway means the processor is not configured; callers surface that
// as service-unavailable rather than failing at startup.
type PaymentGateway interface {
	// CreateIntent opens a payment intent for the given amount in cents.
	CreateIntent(ctx context.Context, amountCents int64) (*PaymentIntent, error)
}
