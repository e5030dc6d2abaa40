package impl

import (
	"context"
	"log/slog"
	"math"
	"time"

	deliverycontext "harmony/internal/delivery/context"
	"harmony/internal/domain/entity"
	domainerrors "harmony/internal/domain/errors"
	"harmony/internal/domain/repository"
	"harmony/internal/domain/service"
	"harmony/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// paymentService implements the PaymentUsecase interface.
type paymentService struct {
	txManager   repository.TransactionManager
	paymentRepo repository.PaymentRepository
	gateway     service.PaymentGateway
	logger      *slog.Logger
}

// PaymentServiceParams holds dependencies for PaymentService, injected by Fx.
type PaymentServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	PaymentRepo repository.PaymentRepository
	Gateway     service.PaymentGateway `optional:"true"`
	Logger      *slog.Logger
}

// NewPaymentService is the constructor for paymentService.
func NewPaymentService(params PaymentServiceParams) usecase.PaymentUsecase {
	return &paymentService{
		txManager:   params.TxManager,
		paymentRepo: params.PaymentRepo,
		gateway:     params.Gateway,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *paymentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreatePaymentIntent opens a payment with the processor for the given
// price. The processor charges in cents.
func (srv *paymentService) CreatePaymentIntent(ctx context.Context, input *usecase.CreatePaymentIntentInput) (*usecase.CreatePaymentIntentOutput, error) {
	if srv.gateway == nil {
		return nil, domainerrors.ErrPaymentUnavailable.WrapMessage("payment gateway not configured")
	}

	if input.Price <= 0 {
		return nil, domainerrors.ErrPaymentInvalid.WrapMessage("price must be positive")
	}

	amountCents := int64(math.Round(input.Price * 100))
	intent, err := srv.gateway.CreateIntent(ctx, amountCents)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create payment intent")
	}

	srv.log(ctx).Info("Payment intent created",
		slog.String("intent_id", intent.ID),
		slog.Int64("amount_cents", amountCents))

	return &usecase.CreatePaymentIntentOutput{ClientSecret: intent.ClientSecret}, nil
}

// RecordPayment persists the completed purchase and upgrades the caller's
// membership tier in the same transaction.
func (srv *paymentService) RecordPayment(ctx context.Context, caller usecase.Caller, input *usecase.RecordPaymentInput) (*entity.Payment, error) {
	tier := entity.MembershipTier(input.Package)
	if !tier.IsValid() || !tier.IsPremium() {
		return nil, domainerrors.ErrPaymentInvalid.WrapMessage("unknown membership package")
	}
	if input.Amount <= 0 {
		return nil, domainerrors.ErrPaymentInvalid.WrapMessage("amount must be positive")
	}
	if input.TransactionID == "" {
		return nil, domainerrors.ErrPaymentInvalid.WrapMessage("transaction id is required")
	}

	payment := &entity.Payment{
		ID:            uuid.New(),
		UserEmail:     caller.Email,
		Amount:        input.Amount,
		Package:       tier,
		TransactionID: input.TransactionID,
		Status:        "succeeded",
		CreatedAt:     time.Now(),
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.PaymentRepo().Create(ctx, payment); err != nil {
			return errors.Wrap(err, "failed to record payment")
		}

		if err := repoFactory.UserRepo().UpdateTier(ctx, caller.Email, tier); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound.WrapMessage("paying user not found")
			}

			return errors.Wrap(err, "failed to upgrade membership tier")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Payment recorded",
		slog.String("user", caller.Email),
		slog.String("package", tier.String()),
		slog.Float64("amount", input.Amount))

	return payment, nil
}

// History returns the caller's payment history, newest first.
func (srv *paymentService) History(ctx context.Context, caller usecase.Caller) ([]*entity.Payment, error) {
	payments, err := srv.paymentRepo.FindByUserEmail(ctx, caller.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list payment history")
	}

	return payments, nil
}
