package impl

import (
	"context"
	"testing"

	"harmony/internal/domain/entity"
	domainerrors "harmony/internal/domain/errors"
	"harmony/internal/domain/repository"
	mockRepo "harmony/internal/mocks/repository"
	mockSvc "harmony/internal/mocks/service"
	"harmony/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRequestService_CreateRequest_SnapshotsMeal(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	requestRepo := mockRepo.NewMockRequestRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	mealRepo := mockRepo.NewMockMealRepository(t)
	qrService := mockSvc.NewMockQRCodeService(t)
	svc := NewRequestService(RequestServiceParams{
		TxManager:   txManager,
		RequestRepo: requestRepo,
		UserRepo:    userRepo,
		QRService:   qrService,
		Logger:      testLogger(),
	})

	ctx := context.Background()
	mealID := uuid.New()
	caller := usecase.Caller{UserID: uuid.New(), Email: "amy@example.com", Role: "user"}
	user := &entity.User{ID: caller.UserID, Email: caller.Email, Name: "Amy", Tier: entity.TierGold}
	meal := &entity.Meal{
		ID:           mealID,
		Title:        "滷肉飯",
		Category:     "lunch",
		Price:        120,
		ImageURL:     "https://img.example.com/braised.png",
		Likes:        7,
		Rating:       4.2,
		ReviewsCount: 5,
	}

	userRepo.EXPECT().FindByID(ctx, caller.UserID).Return(user, nil)

	expectTx(txManager, factory)
	factory.EXPECT().MealRepo().Return(mealRepo)
	factory.EXPECT().RequestRepo().Return(requestRepo)

	mealRepo.EXPECT().FindByID(ctx, mealID).Return(meal, nil)
	requestRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.MealRequest")).
		RunAndReturn(func(_ context.Context, request *entity.MealRequest) error {
			assert.Equal(t, meal.Title, request.Title)
			assert.Equal(t, meal.Price, request.Price)
			assert.Equal(t, meal.Likes, request.Likes)
			assert.Equal(t, meal.Rating, request.Rating)
			assert.Equal(t, meal.ReviewsCount, request.ReviewsCount)
			assert.Equal(t, entity.RequestStatusPending, request.Status)

			return nil
		})

	request, err := svc.CreateRequest(ctx, caller, mealID)
	require.NoError(t, err)
	assert.Equal(t, mealID, request.MealID)
	assert.Equal(t, user.Email, request.UserEmail)
}

func TestRequestService_CreateRequest_BaseTierForbidden(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	requestRepo := mockRepo.NewMockRequestRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	qrService := mockSvc.NewMockQRCodeService(t)
	svc := NewRequestService(RequestServiceParams{
		TxManager:   txManager,
		RequestRepo: requestRepo,
		UserRepo:    userRepo,
		QRService:   qrService,
		Logger:      testLogger(),
	})

	ctx := context.Background()
	caller := usecase.Caller{UserID: uuid.New(), Email: "amy@example.com", Role: "user"}

	userRepo.EXPECT().FindByID(ctx, caller.UserID).
		Return(&entity.User{ID: caller.UserID, Email: caller.Email, Tier: entity.TierBronze}, nil)

	_, err := svc.CreateRequest(ctx, caller, uuid.New())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrSubscriptionRequired))
}

func TestRequestService_CreateRequest_Duplicate(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	requestRepo := mockRepo.NewMockRequestRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	mealRepo := mockRepo.NewMockMealRepository(t)
	qrService := mockSvc.NewMockQRCodeService(t)
	svc := NewRequestService(RequestServiceParams{
		TxManager:   txManager,
		RequestRepo: requestRepo,
		UserRepo:    userRepo,
		QRService:   qrService,
		Logger:      testLogger(),
	})

	ctx := context.Background()
	mealID := uuid.New()
	caller := usecase.Caller{UserID: uuid.New(), Email: "amy@example.com", Role: "user"}

	userRepo.EXPECT().FindByID(ctx, caller.UserID).
		Return(&entity.User{ID: caller.UserID, Email: caller.Email, Tier: entity.TierSilver}, nil)

	expectTx(txManager, factory)
	factory.EXPECT().MealRepo().Return(mealRepo)
	factory.EXPECT().RequestRepo().Return(requestRepo)

	mealRepo.EXPECT().FindByID(ctx, mealID).Return(&entity.Meal{ID: mealID}, nil)
	requestRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.MealRequest")).
		Return(repository.ErrDuplicateRequest)

	_, err := svc.CreateRequest(ctx, caller, mealID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrMealAlreadyRequested))
}

func TestRequestService_CancelRequest_NotFound(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	requestRepo := mockRepo.NewMockRequestRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	qrService := mockSvc.NewMockQRCodeService(t)
	svc := NewRequestService(RequestServiceParams{
		TxManager:   txManager,
		RequestRepo: requestRepo,
		UserRepo:    userRepo,
		QRService:   qrService,
		Logger:      testLogger(),
	})

	ctx := context.Background()
	id := uuid.New()
	caller := usecase.Caller{UserID: uuid.New(), Email: "amy@example.com", Role: "user"}

	requestRepo.EXPECT().DeletePending(ctx, id, caller.Email).Return(repository.ErrRequestNotFound)

	err := svc.CancelRequest(ctx, caller, id)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrRequestNotFound))
}

func TestRequestService_MarkDelivered_PushFailureIsBestEffort(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	requestRepo := mockRepo.NewMockRequestRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	qrService := mockSvc.NewMockQRCodeService(t)
	pushSender := mockSvc.NewMockPushSender(t)
	svc := NewRequestService(RequestServiceParams{
		TxManager:   txManager,
		RequestRepo: requestRepo,
		UserRepo:    userRepo,
		QRService:   qrService,
		PushSender:  pushSender,
		Logger:      testLogger(),
	})

	ctx := context.Background()
	id := uuid.New()
	request := &entity.MealRequest{
		ID:        id,
		MealID:    uuid.New(),
		UserEmail: "amy@example.com",
		Title:     "滷肉飯",
		Status:    entity.RequestStatusPending,
	}

	requestRepo.EXPECT().FindByID(ctx, id).Return(request, nil)
	requestRepo.EXPECT().MarkDelivered(ctx, id).Return(nil)
	pushSender.EXPECT().
		SendToUserTopic(ctx, "user-amy_example_com", mock.AnythingOfType("string"), mock.AnythingOfType("string"), mock.Anything).
		Return(errors.New("fcm unreachable"))

	err := svc.MarkDelivered(ctx, id)
	require.NoError(t, err)
}

func TestRequestService_MarkDelivered_NotFound(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	requestRepo := mockRepo.NewMockRequestRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	qrService := mockSvc.NewMockQRCodeService(t)
	svc := NewRequestService(RequestServiceParams{
		TxManager:   txManager,
		RequestRepo: requestRepo,
		UserRepo:    userRepo,
		QRService:   qrService,
		Logger:      testLogger(),
	})

	ctx := context.Background()
	id := uuid.New()

	requestRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrRequestNotFound)

	err := svc.MarkDelivered(ctx, id)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrRequestNotFound))
}

func TestRequestService_PickupTicket_OwnRequest(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	requestRepo := mockRepo.NewMockRequestRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	qrService := mockSvc.NewMockQRCodeService(t)
	svc := NewRequestService(RequestServiceParams{
		TxManager:   txManager,
		RequestRepo: requestRepo,
		UserRepo:    userRepo,
		QRService:   qrService,
		Logger:      testLogger(),
	})

	ctx := context.Background()
	id := uuid.New()
	caller := usecase.Caller{UserID: uuid.New(), Email: "amy@example.com", Role: "user"}

	requestRepo.EXPECT().FindByID(ctx, id).
		Return(&entity.MealRequest{ID: id, UserEmail: caller.Email}, nil)
	qrService.EXPECT().GeneratePickupQR(id).Return([]byte("png-bytes"), nil)

	png, err := svc.PickupTicket(ctx, caller, id)
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), png)
}

func TestRequestService_PickupTicket_ForeignRequestLooksMissing(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	requestRepo := mockRepo.NewMockRequestRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	qrService := mockSvc.NewMockQRCodeService(t)
	svc := NewRequestService(RequestServiceParams{
		TxManager:   txManager,
		RequestRepo: requestRepo,
		UserRepo:    userRepo,
		QRService:   qrService,
		Logger:      testLogger(),
	})

	ctx := context.Background()
	id := uuid.New()
	caller := usecase.Caller{UserID: uuid.New(), Email: "amy@example.com", Role: "user"}

	requestRepo.EXPECT().FindByID(ctx, id).
		Return(&entity.MealRequest{ID: id, UserEmail: "someone-else@example.com"}, nil)

	_, err := svc.PickupTicket(ctx, caller, id)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrRequestNotFound))
}

func TestUserTopic(t *testing.T) {
	assert.Equal(t, "user-amy_example_com", userTopic("amy@example.com"))
	assert.Equal(t, "user-a_b_c_example_com", userTopic("a.b+c@example.com"))
}
