package impl

import (
	"context"
	"testing"

	"harmony/internal/domain/entity"
	domainerrors "harmony/internal/domain/errors"
	"harmony/internal/domain/service"
	mockRepo "harmony/internal/mocks/repository"
	mockSvc "harmony/internal/mocks/service"
	"harmony/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPaymentService_CreatePaymentIntent_ConvertsToCents(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	paymentRepo := mockRepo.NewMockPaymentRepository(t)
	gateway := mockSvc.NewMockPaymentGateway(t)
	svc := NewPaymentService(PaymentServiceParams{
		TxManager:   txManager,
		PaymentRepo: paymentRepo,
		Gateway:     gateway,
		Logger:      testLogger(),
	})

	ctx := context.Background()

	gateway.EXPECT().CreateIntent(ctx, int64(29999)).Return(&service.PaymentIntent{
		ID:           "pi_123",
		ClientSecret: "pi_123_secret",
	}, nil)

	out, err := svc.CreatePaymentIntent(ctx, &usecase.CreatePaymentIntentInput{Price: 299.99})
	require.NoError(t, err)
	assert.Equal(t, "pi_123_secret", out.ClientSecret)
}

func TestPaymentService_CreatePaymentIntent_GatewayNotConfigured(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	paymentRepo := mockRepo.NewMockPaymentRepository(t)
	svc := NewPaymentService(PaymentServiceParams{
		TxManager:   txManager,
		PaymentRepo: paymentRepo,
		Logger:      testLogger(),
	})

	_, err := svc.CreatePaymentIntent(context.Background(), &usecase.CreatePaymentIntentInput{Price: 100})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPaymentUnavailable))
}

func TestPaymentService_CreatePaymentIntent_NonPositivePrice(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	paymentRepo := mockRepo.NewMockPaymentRepository(t)
	gateway := mockSvc.NewMockPaymentGateway(t)
	svc := NewPaymentService(PaymentServiceParams{
		TxManager:   txManager,
		PaymentRepo: paymentRepo,
		Gateway:     gateway,
		Logger:      testLogger(),
	})

	_, err := svc.CreatePaymentIntent(context.Background(), &usecase.CreatePaymentIntentInput{Price: 0})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPaymentInvalid))
}

func TestPaymentService_RecordPayment_UpgradesTierInSameTransaction(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	paymentRepo := mockRepo.NewMockPaymentRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	svc := NewPaymentService(PaymentServiceParams{
		TxManager:   txManager,
		PaymentRepo: paymentRepo,
		Logger:      testLogger(),
	})

	ctx := context.Background()
	caller := usecase.Caller{UserID: uuid.New(), Email: "amy@example.com", Role: "user"}

	expectTx(txManager, factory)
	factory.EXPECT().PaymentRepo().Return(paymentRepo)
	factory.EXPECT().UserRepo().Return(userRepo)

	paymentRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Payment")).
		RunAndReturn(func(_ context.Context, payment *entity.Payment) error {
			assert.Equal(t, caller.Email, payment.UserEmail)
			assert.Equal(t, entity.TierGold, payment.Package)
			assert.Equal(t, "succeeded", payment.Status)

			return nil
		})
	userRepo.EXPECT().UpdateTier(ctx, caller.Email, entity.TierGold).Return(nil)

	payment, err := svc.RecordPayment(ctx, caller, &usecase.RecordPaymentInput{
		Amount:        499,
		Package:       "gold",
		TransactionID: "pi_456",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.TierGold, payment.Package)
	assert.Equal(t, float64(499), payment.Amount)
}

func TestPaymentService_RecordPayment_RejectsInvalidInput(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	paymentRepo := mockRepo.NewMockPaymentRepository(t)
	svc := NewPaymentService(PaymentServiceParams{
		TxManager:   txManager,
		PaymentRepo: paymentRepo,
		Logger:      testLogger(),
	})

	ctx := context.Background()
	caller := usecase.Caller{UserID: uuid.New(), Email: "amy@example.com", Role: "user"}

	// The base tier is not purchasable.
	_, err := svc.RecordPayment(ctx, caller, &usecase.RecordPaymentInput{
		Amount: 499, Package: "bronze", TransactionID: "pi_1",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPaymentInvalid))

	_, err = svc.RecordPayment(ctx, caller, &usecase.RecordPaymentInput{
		Amount: 499, Package: "diamond", TransactionID: "pi_2",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPaymentInvalid))

	_, err = svc.RecordPayment(ctx, caller, &usecase.RecordPaymentInput{
		Amount: 0, Package: "gold", TransactionID: "pi_3",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPaymentInvalid))

	_, err = svc.RecordPayment(ctx, caller, &usecase.RecordPaymentInput{
		Amount: 499, Package: "gold", TransactionID: "",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPaymentInvalid))
}

func TestPaymentService_History(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	paymentRepo := mockRepo.NewMockPaymentRepository(t)
	svc := NewPaymentService(PaymentServiceParams{
		TxManager:   txManager,
		PaymentRepo: paymentRepo,
		Logger:      testLogger(),
	})

	ctx := context.Background()
	caller := usecase.Caller{UserID: uuid.New(), Email: "amy@example.com", Role: "user"}
	records := []*entity.Payment{{ID: uuid.New(), UserEmail: caller.Email, Amount: 499}}

	paymentRepo.EXPECT().FindByUserEmail(ctx, caller.Email).Return(records, nil)

	payments, err := svc.History(ctx, caller)
	require.NoError(t, err)
	assert.Equal(t, records, payments)
}
