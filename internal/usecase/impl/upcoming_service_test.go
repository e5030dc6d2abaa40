package impl

import (
	"context"
	"testing"

	"harmony/internal/domain/entity"
	domainerrors "harmony/internal/domain/errors"
	"harmony/internal/domain/repository"
	mockRepo "harmony/internal/mocks/repository"
	"harmony/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newUpcomingFixture(t *testing.T) (
	*mockRepo.MockTransactionManager,
	*mockRepo.MockRepositoryFactory,
	*mockRepo.MockUpcomingMealRepository,
	*mockRepo.MockUserRepository,
	usecase.UpcomingUsecase,
) {
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	upcomingRepo := mockRepo.NewMockUpcomingMealRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	svc := NewUpcomingService(UpcomingServiceParams{
		TxManager:    txManager,
		UpcomingRepo: upcomingRepo,
		UserRepo:     userRepo,
		Logger:       testLogger(),
	})

	return txManager, factory, upcomingRepo, userRepo, svc
}

func TestUpcomingService_LikeUpcoming_Success(t *testing.T) {
	txManager, factory, upcomingRepo, userRepo, svc := newUpcomingFixture(t)

	ctx := context.Background()
	id := uuid.New()
	caller := usecase.Caller{UserID: uuid.New(), Email: "amy@example.com", Role: "user"}

	userRepo.EXPECT().FindByID(ctx, caller.UserID).
		Return(&entity.User{ID: caller.UserID, Email: caller.Email, Tier: entity.TierSilver}, nil)

	expectTx(txManager, factory)
	factory.EXPECT().UpcomingRepo().Return(upcomingRepo)

	upcomingRepo.EXPECT().FindByID(ctx, id).Return(&entity.UpcomingMeal{
		ID:      id,
		Likes:   1,
		LikedBy: []string{"bob@example.com"},
	}, nil)
	upcomingRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.UpcomingMeal")).
		RunAndReturn(func(_ context.Context, meal *entity.UpcomingMeal) error {
			assert.Equal(t, 2, meal.Likes)
			assert.Contains(t, meal.LikedBy, caller.Email)

			return nil
		})

	updated, err := svc.LikeUpcoming(ctx, caller, id)
	require.NoError(t, err)
	assert.Equal(t, 2, updated.Likes)
	assert.Len(t, updated.LikedBy, updated.Likes)
}

func TestUpcomingService_LikeUpcoming_BaseTierGatedBeforeLookup(t *testing.T) {
	_, _, _, userRepo, svc := newUpcomingFixture(t)

	ctx := context.Background()
	caller := usecase.Caller{UserID: uuid.New(), Email: "amy@example.com", Role: "user"}

	// No upcoming repo expectation: the tier gate fires before the meal is
	// even looked up, so unknown IDs also surface as premium-required.
	userRepo.EXPECT().FindByID(ctx, caller.UserID).
		Return(&entity.User{ID: caller.UserID, Email: caller.Email, Tier: entity.TierBronze}, nil)

	_, err := svc.LikeUpcoming(ctx, caller, uuid.New())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPremiumRequired))
}

func TestUpcomingService_LikeUpcoming_Duplicate(t *testing.T) {
	txManager, factory, upcomingRepo, userRepo, svc := newUpcomingFixture(t)

	ctx := context.Background()
	id := uuid.New()
	caller := usecase.Caller{UserID: uuid.New(), Email: "amy@example.com", Role: "user"}

	userRepo.EXPECT().FindByID(ctx, caller.UserID).
		Return(&entity.User{ID: caller.UserID, Email: caller.Email, Tier: entity.TierPlatinum}, nil)

	expectTx(txManager, factory)
	factory.EXPECT().UpcomingRepo().Return(upcomingRepo)
	upcomingRepo.EXPECT().FindByID(ctx, id).Return(&entity.UpcomingMeal{
		ID:      id,
		Likes:   1,
		LikedBy: []string{caller.Email},
	}, nil)

	_, err := svc.LikeUpcoming(ctx, caller, id)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUpcomingAlreadyLiked))
}

func TestUpcomingService_UnlikeUpcoming_RemovesInterest(t *testing.T) {
	txManager, factory, upcomingRepo, _, svc := newUpcomingFixture(t)

	ctx := context.Background()
	id := uuid.New()
	caller := usecase.Caller{UserID: uuid.New(), Email: "amy@example.com", Role: "user"}

	// No tier check on withdrawal: downgraded members can still unlike.
	expectTx(txManager, factory)
	factory.EXPECT().UpcomingRepo().Return(upcomingRepo)
	upcomingRepo.EXPECT().FindByID(ctx, id).Return(&entity.UpcomingMeal{
		ID:      id,
		Likes:   2,
		LikedBy: []string{caller.Email, "bob@example.com"},
	}, nil)
	upcomingRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.UpcomingMeal")).
		RunAndReturn(func(_ context.Context, meal *entity.UpcomingMeal) error {
			assert.Equal(t, 1, meal.Likes)
			assert.NotContains(t, meal.LikedBy, caller.Email)

			return nil
		})

	updated, err := svc.UnlikeUpcoming(ctx, caller, id)
	require.NoError(t, err)
	assert.Equal(t, 1, updated.Likes)
}

func TestUpcomingService_UnlikeUpcoming_NoInterestIsNoop(t *testing.T) {
	txManager, factory, upcomingRepo, _, svc := newUpcomingFixture(t)

	ctx := context.Background()
	id := uuid.New()
	caller := usecase.Caller{UserID: uuid.New(), Email: "amy@example.com", Role: "user"}

	expectTx(txManager, factory)
	factory.EXPECT().UpcomingRepo().Return(upcomingRepo)
	upcomingRepo.EXPECT().FindByID(ctx, id).Return(&entity.UpcomingMeal{
		ID:      id,
		Likes:   1,
		LikedBy: []string{"bob@example.com"},
	}, nil)

	updated, err := svc.UnlikeUpcoming(ctx, caller, id)
	require.NoError(t, err)
	assert.Equal(t, 1, updated.Likes)
}

func TestUpcomingService_PublishUpcoming_ResetsCountersAndDeletesStaged(t *testing.T) {
	txManager, factory, upcomingRepo, _, svc := newUpcomingFixture(t)
	mealRepo := mockRepo.NewMockMealRepository(t)

	ctx := context.Background()
	id := uuid.New()
	staged := &entity.UpcomingMeal{
		ID:               id,
		Title:            "芒果冰",
		Category:         "dessert",
		Price:            90,
		DistributorEmail: "staff@example.com",
		Likes:            12,
		LikedBy:          []string{"amy@example.com", "bob@example.com"},
	}

	expectTx(txManager, factory)
	factory.EXPECT().UpcomingRepo().Return(upcomingRepo)
	factory.EXPECT().MealRepo().Return(mealRepo)

	upcomingRepo.EXPECT().FindByID(ctx, id).Return(staged, nil)
	mealRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Meal")).
		RunAndReturn(func(_ context.Context, meal *entity.Meal) error {
			assert.Equal(t, staged.Title, meal.Title)
			assert.Equal(t, 0, meal.Likes)
			assert.Equal(t, float64(0), meal.Rating)
			assert.Equal(t, 0, meal.ReviewsCount)

			return nil
		})
	upcomingRepo.EXPECT().Delete(ctx, id).Return(nil)

	published, err := svc.PublishUpcoming(ctx, id)
	require.NoError(t, err)
	assert.NotEqual(t, id, published.ID)
	assert.Equal(t, staged.Title, published.Title)
	assert.Equal(t, 0, published.Likes)
}

func TestUpcomingService_PublishUpcoming_NotFound(t *testing.T) {
	txManager, factory, upcomingRepo, _, svc := newUpcomingFixture(t)

	ctx := context.Background()
	id := uuid.New()

	expectTx(txManager, factory)
	factory.EXPECT().UpcomingRepo().Return(upcomingRepo)
	upcomingRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrUpcomingMealNotFound)

	_, err := svc.PublishUpcoming(ctx, id)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUpcomingMealNotFound))
}

func TestUpcomingService_AddUpcoming_StartsWithoutInterest(t *testing.T) {
	_, _, upcomingRepo, userRepo, svc := newUpcomingFixture(t)

	ctx := context.Background()
	caller := usecase.Caller{UserID: uuid.New(), Email: "staff@example.com", Role: "admin"}

	userRepo.EXPECT().FindByID(ctx, caller.UserID).
		Return(&entity.User{ID: caller.UserID, Email: caller.Email, Name: "Staff"}, nil)
	upcomingRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.UpcomingMeal")).
		Return(nil)

	meal, err := svc.AddUpcoming(ctx, caller, &usecase.AddUpcomingMealInput{
		Title:    "芒果冰",
		Category: "dessert",
		Price:    90,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, meal.Likes)
	assert.Empty(t, meal.LikedBy)
	assert.Equal(t, caller.Email, meal.DistributorEmail)
}
