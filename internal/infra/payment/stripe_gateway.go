// Package payment adapts the Stripe SDK to the payment gateway interface.
package payment

import (
	"context"
	"log/slog"
	"strings"

	"harmony/config"
	"harmony/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/paymentintent"
)

const defaultCurrency = "usd"

type stripeGateway struct {
	currency string
	logger   *slog.Logger
}

// NewStripeGateway configures the Stripe client from config. It returns nil
// when no secret key is set so payment endpoints can answer unavailable
// instead of the process failing at startup.
func NewStripeGateway(cfg *config.Config, logger *slog.Logger) service.PaymentGateway {
	if cfg.Stripe == nil || strings.TrimSpace(cfg.Stripe.SecretKey) == "" {
		logger.Info("Stripe not configured, payment intents disabled")

		return nil
	}

	stripe.Key = cfg.Stripe.SecretKey

	currency := defaultCurrency
	if cfg.Stripe.Currency != "" {
		currency = strings.ToLower(cfg.Stripe.Currency)
	}

	logger.Info("Stripe payment gateway initialized",
		slog.String("currency", currency),
	)

	return &stripeGateway{
		currency: currency,
		logger:   logger,
	}
}

// CreateIntent opens a payment intent for the given amount in cents.
func (g *stripeGateway) CreateIntent(ctx context.Context, amountCents int64) (*service.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amountCents),
		Currency: stripe.String(g.currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx

	intent, err := paymentintent.New(params)
	if err != nil {
		return nil, errors.Wrap(err, "create payment intent")
	}

	g.logger.Debug("Payment intent created",
		slog.String("intent_id", intent.ID),
		slog.Int64("amount_cents", amountCents),
	)

	return &service.PaymentIntent{
		ID:           intent.ID,
		ClientSecret: intent.ClientSecret,
	}, nil
}
