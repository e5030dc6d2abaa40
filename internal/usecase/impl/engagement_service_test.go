package impl

import (
	"context"
	"log/slog"
	"testing"

	"harmony/internal/domain/constants"
	"harmony/internal/domain/entity"
	domainerrors "harmony/internal/domain/errors"
	"harmony/internal/domain/repository"
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

// testLogger discards output so service logging never pollutes test runs.
func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// expectTx wires the transaction manager mock to run the unit of work
// against the given repository factory, as the real manager would.
func expectTx(txManager *mockRepo.MockTransactionManager, factory repository.RepositoryFactory) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func newEngagementFixture(t *testing.T) (
	*mockRepo.MockTransactionManager,
	*mockRepo.MockRepositoryFactory,
	*mockRepo.MockUserRepository,
	*mockRepo.MockMealRepository,
	*mockRepo.MockReviewRepository,
	*mockRepo.MockLikeRepository,
	*mockRepo.MockRequestRepository,
	*mockSvc.MockEventPublisher,
	usecase.EngagementUsecase,
) {
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	mealRepo := mockRepo.NewMockMealRepository(t)
	reviewRepo := mockRepo.NewMockReviewRepository(t)
	likeRepo := mockRepo.NewMockLikeRepository(t)
	requestRepo := mockRepo.NewMockRequestRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	svc := NewEngagementService(EngagementServiceParams{
		TxManager:      txManager,
		UserRepo:       userRepo,
		ReviewRepo:     reviewRepo,
		EventPublisher: publisher,
		Logger:         testLogger(),
	})

	return txManager, factory, userRepo, mealRepo, reviewRepo, likeRepo, requestRepo, publisher, svc
}

func TestEngagementService_LikeMeal_Success(t *testing.T) {
	txManager, factory, userRepo, mealRepo, _, likeRepo, requestRepo, publisher, svc := newEngagementFixture(t)

	ctx := context.Background()
	mealID := uuid.New()
	caller := usecase.Caller{UserID: uuid.New(), Email: "amy@example.com", Role: "user"}
	user := &entity.User{ID: caller.UserID, Email: caller.Email, Name: "Amy", Tier: entity.TierSilver}

	userRepo.EXPECT().FindByID(ctx, caller.UserID).Return(user, nil)

	expectTx(txManager, factory)
	factory.EXPECT().MealRepo().Return(mealRepo)
	factory.EXPECT().LikeRepo().Return(likeRepo)
	factory.EXPECT().RequestRepo().Return(requestRepo)

	mealRepo.EXPECT().FindByID(ctx, mealID).Return(&entity.Meal{ID: mealID}, nil)
	likeRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Like")).
		RunAndReturn(func(_ context.Context, like *entity.Like) error {
			assert.Equal(t, mealID, like.MealID)
			assert.Equal(t, user.ID, like.UserID)
			assert.Equal(t, user.Email, like.UserEmail)

			return nil
		})
	mealRepo.EXPECT().IncrementLikes(ctx, mealID, 1).Return(nil)
	requestRepo.EXPECT().MirrorLikeAdded(ctx, mealID).Return(nil)

	publisher.EXPECT().
		PublishEngagementEvent(ctx, mock.AnythingOfType("*service.EngagementEvent")).
		RunAndReturn(func(_ context.Context, event *service.EngagementEvent) error {
			assert.Equal(t, constants.EventMealLiked, event.Type)
			assert.Equal(t, mealID.String(), event.MealID)
			assert.Equal(t, user.Email, event.UserEmail)

			return nil
		})

	err := svc.LikeMeal(ctx, caller, mealID)
	require.NoError(t, err)
}

func TestEngagementService_LikeMeal_Duplicate(t *testing.T) {
	txManager, factory, userRepo, mealRepo, _, likeRepo, _, _, svc := newEngagementFixture(t)

	ctx := context.Background()
	mealID := uuid.New()
	caller := usecase.Caller{UserID: uuid.New(), Email: "amy@example.com", Role: "user"}

	userRepo.EXPECT().FindByID(ctx, caller.UserID).
		Return(&entity.User{ID: caller.UserID, Email: caller.Email}, nil)

	expectTx(txManager, factory)
	factory.EXPECT().MealRepo().Return(mealRepo)
	factory.EXPECT().LikeRepo().Return(likeRepo)

	mealRepo.EXPECT().FindByID(ctx, mealID).Return(&entity.Meal{ID: mealID}, nil)
	likeRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Like")).
		Return(repository.ErrDuplicateLike)

	err := svc.LikeMeal(ctx, caller, mealID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrMealAlreadyLiked))
}

func TestEngagementService_LikeMeal_MealNotFound(t *testing.T) {
	txManager, factory, userRepo, mealRepo, _, _, _, _, svc := newEngagementFixture(t)

	ctx := context.Background()
	mealID := uuid.New()
	caller := usecase.Caller{UserID: uuid.New(), Email: "amy@example.com", Role: "user"}

	userRepo.EXPECT().FindByID(ctx, caller.UserID).
		Return(&entity.User{ID: caller.UserID, Email: caller.Email}, nil)

	expectTx(txManager, factory)
	factory.EXPECT().MealRepo().Return(mealRepo)
	mealRepo.EXPECT().FindByID(ctx, mealID).Return(nil, repository.ErrMealNotFound)

	err := svc.LikeMeal(ctx, caller, mealID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrMealNotFound))
}

func TestEngagementService_AddReview_RecomputesRoundedMean(t *testing.T) {
	txManager, factory, userRepo, mealRepo, reviewRepo, _, requestRepo, publisher, svc := newEngagementFixture(t)

	ctx := context.Background()
	mealID := uuid.New()
	caller := usecase.Caller{UserID: uuid.New(), Email: "amy@example.com", Role: "user"}
	user := &entity.User{ID: caller.UserID, Email: caller.Email, Name: "Amy"}

	userRepo.EXPECT().FindByID(ctx, caller.UserID).Return(user, nil)

	expectTx(txManager, factory)
	factory.EXPECT().MealRepo().Return(mealRepo)
	factory.EXPECT().ReviewRepo().Return(reviewRepo)
	factory.EXPECT().RequestRepo().Return(requestRepo)

	mealRepo.EXPECT().FindByID(ctx, mealID).Return(&entity.Meal{ID: mealID}, nil)
	reviewRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Review")).Return(nil)

	// 5 + 4 + 4.5 = 13.5, mean 4.5 exactly; with 4 instead of 4.5 the mean
	// 4.333... rounds to 4.3.
	reviewRepo.EXPECT().FindByMeal(ctx, mealID).Return([]*entity.Review{
		{Rating: 5},
		{Rating: 4},
		{Rating: 4},
	}, nil)

	mealRepo.EXPECT().SetRatingAndIncrementReviews(ctx, mealID, 4.3).Return(nil)
	requestRepo.EXPECT().MirrorReviewAdded(ctx, mealID, 4.3).Return(nil)

	publisher.EXPECT().
		PublishEngagementEvent(ctx, mock.AnythingOfType("*service.EngagementEvent")).
		RunAndReturn(func(_ context.Context, event *service.EngagementEvent) error {
			assert.Equal(t, constants.EventReviewCreated, event.Type)
			assert.Equal(t, 4.3, event.Rating)
			assert.Equal(t, 3, event.ReviewsCount)

			return nil
		})

	review, err := svc.AddReview(ctx, caller, mealID, &usecase.AddReviewInput{Text: "好吃", Rating: 4})
	require.NoError(t, err)
	assert.Equal(t, mealID, review.MealID)
	assert.Equal(t, user.Email, review.UserEmail)
	assert.Equal(t, float64(4), review.Rating)
}

func TestEngagementService_AddReview_InvalidInput(t *testing.T) {
	_, _, _, _, _, _, _, _, svc := newEngagementFixture(t)

	ctx := context.Background()
	caller := usecase.Caller{UserID: uuid.New(), Email: "amy@example.com", Role: "user"}

	_, err := svc.AddReview(ctx, caller, uuid.New(), &usecase.AddReviewInput{Text: "", Rating: 4})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrReviewInvalid))

	_, err = svc.AddReview(ctx, caller, uuid.New(), &usecase.AddReviewInput{Text: "好吃", Rating: 5.5})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrReviewInvalid))
}

func TestEngagementService_UpdateReview_RewritesRatingOnly(t *testing.T) {
	txManager, factory, _, mealRepo, reviewRepo, _, _, publisher, svc := newEngagementFixture(t)

	ctx := context.Background()
	mealID := uuid.New()
	reviewID := uuid.New()
	caller := usecase.Caller{UserID: uuid.New(), Email: "amy@example.com", Role: "user"}

	expectTx(txManager, factory)
	factory.EXPECT().ReviewRepo().Return(reviewRepo)
	factory.EXPECT().MealRepo().Return(mealRepo)

	reviewRepo.EXPECT().FindByID(ctx, reviewID).Return(&entity.Review{
		ID:        reviewID,
		MealID:    mealID,
		UserEmail: caller.Email,
		Text:      "普通",
		Rating:    2,
	}, nil)
	reviewRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Review")).
		RunAndReturn(func(_ context.Context, review *entity.Review) error {
			assert.Equal(t, "其實不錯", review.Text)
			assert.Equal(t, float64(4), review.Rating)

			return nil
		})
	reviewRepo.EXPECT().FindByMeal(ctx, mealID).Return([]*entity.Review{
		{Rating: 4},
		{Rating: 5},
	}, nil)

	// The review count and the request mirrors stay untouched on edits;
	// only the meal rating is rewritten.
	mealRepo.EXPECT().SetRating(ctx, mealID, 4.5).Return(nil)

	publisher.EXPECT().
		PublishEngagementEvent(ctx, mock.AnythingOfType("*service.EngagementEvent")).
		Return(nil)

	updated, err := svc.UpdateReview(ctx, caller, reviewID, &usecase.UpdateReviewInput{Text: "其實不錯", Rating: 4})
	require.NoError(t, err)
	assert.Equal(t, float64(4), updated.Rating)
}

func TestEngagementService_UpdateReview_ForeignReviewLooksMissing(t *testing.T) {
	txManager, factory, _, _, reviewRepo, _, _, _, svc := newEngagementFixture(t)

	ctx := context.Background()
	reviewID := uuid.New()
	caller := usecase.Caller{UserID: uuid.New(), Email: "amy@example.com", Role: "user"}

	expectTx(txManager, factory)
	factory.EXPECT().ReviewRepo().Return(reviewRepo)
	reviewRepo.EXPECT().FindByID(ctx, reviewID).Return(&entity.Review{
		ID:        reviewID,
		MealID:    uuid.New(),
		UserEmail: "someone-else@example.com",
	}, nil)

	_, err := svc.UpdateReview(ctx, caller, reviewID, &usecase.UpdateReviewInput{Text: "改", Rating: 3})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrReviewNotFound))
}

func TestEngagementService_DeleteReview_AdminDeletesForeign(t *testing.T) {
	txManager, factory, _, mealRepo, reviewRepo, _, _, publisher, svc := newEngagementFixture(t)

	ctx := context.Background()
	mealID := uuid.New()
	reviewID := uuid.New()
	caller := usecase.Caller{UserID: uuid.New(), Email: "staff@example.com", Role: "admin"}

	expectTx(txManager, factory)
	factory.EXPECT().ReviewRepo().Return(reviewRepo)
	factory.EXPECT().MealRepo().Return(mealRepo)

	reviewRepo.EXPECT().FindByID(ctx, reviewID).Return(&entity.Review{
		ID:        reviewID,
		MealID:    mealID,
		UserEmail: "amy@example.com",
	}, nil)
	reviewRepo.EXPECT().Delete(ctx, reviewID).Return(nil)
	reviewRepo.EXPECT().FindByMeal(ctx, mealID).Return([]*entity.Review{{Rating: 2}}, nil)

	mealRepo.EXPECT().SetRatingAndReviewsCount(ctx, mealID, float64(2), 1).Return(nil)

	publisher.EXPECT().
		PublishEngagementEvent(ctx, mock.AnythingOfType("*service.EngagementEvent")).
		RunAndReturn(func(_ context.Context, event *service.EngagementEvent) error {
			assert.Equal(t, constants.EventReviewDeleted, event.Type)
			assert.Equal(t, 1, event.ReviewsCount)

			return nil
		})

	err := svc.DeleteReview(ctx, caller, reviewID)
	require.NoError(t, err)
}

func TestEngagementService_DeleteReview_LastReviewResetsRating(t *testing.T) {
	txManager, factory, _, mealRepo, reviewRepo, _, _, publisher, svc := newEngagementFixture(t)

	ctx := context.Background()
	mealID := uuid.New()
	reviewID := uuid.New()
	caller := usecase.Caller{UserID: uuid.New(), Email: "amy@example.com", Role: "user"}

	expectTx(txManager, factory)
	factory.EXPECT().ReviewRepo().Return(reviewRepo)
	factory.EXPECT().MealRepo().Return(mealRepo)

	reviewRepo.EXPECT().FindByID(ctx, reviewID).Return(&entity.Review{
		ID:        reviewID,
		MealID:    mealID,
		UserEmail: caller.Email,
	}, nil)
	reviewRepo.EXPECT().Delete(ctx, reviewID).Return(nil)
	reviewRepo.EXPECT().FindByMeal(ctx, mealID).Return([]*entity.Review{}, nil)

	mealRepo.EXPECT().SetRatingAndReviewsCount(ctx, mealID, float64(0), 0).Return(nil)

	publisher.EXPECT().
		PublishEngagementEvent(ctx, mock.AnythingOfType("*service.EngagementEvent")).
		Return(nil)

	err := svc.DeleteReview(ctx, caller, reviewID)
	require.NoError(t, err)
}

func TestEngagementService_DeleteReview_ForeignNonAdmin(t *testing.T) {
	txManager, factory, _, _, reviewRepo, _, _, _, svc := newEngagementFixture(t)

	ctx := context.Background()
	reviewID := uuid.New()
	caller := usecase.Caller{UserID: uuid.New(), Email: "amy@example.com", Role: "user"}

	expectTx(txManager, factory)
	factory.EXPECT().ReviewRepo().Return(reviewRepo)
	reviewRepo.EXPECT().FindByID(ctx, reviewID).Return(&entity.Review{
		ID:        reviewID,
		MealID:    uuid.New(),
		UserEmail: "someone-else@example.com",
	}, nil)

	err := svc.DeleteReview(ctx, caller, reviewID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrReviewNotFound))
}

func TestEngagementService_PublishFailureDoesNotFailMutation(t *testing.T) {
	txManager, factory, userRepo, mealRepo, _, likeRepo, requestRepo, publisher, svc := newEngagementFixture(t)

	ctx := context.Background()
	mealID := uuid.New()
	caller := usecase.Caller{UserID: uuid.New(), Email: "amy@example.com", Role: "user"}

	userRepo.EXPECT().FindByID(ctx, caller.UserID).
		Return(&entity.User{ID: caller.UserID, Email: caller.Email}, nil)

	expectTx(txManager, factory)
	factory.EXPECT().MealRepo().Return(mealRepo)
	factory.EXPECT().LikeRepo().Return(likeRepo)
	factory.EXPECT().RequestRepo().Return(requestRepo)

	mealRepo.EXPECT().FindByID(ctx, mealID).Return(&entity.Meal{ID: mealID}, nil)
	likeRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Like")).Return(nil)
	mealRepo.EXPECT().IncrementLikes(ctx, mealID, 1).Return(nil)
	requestRepo.EXPECT().MirrorLikeAdded(ctx, mealID).Return(nil)

	publisher.EXPECT().
		PublishEngagementEvent(ctx, mock.AnythingOfType("*service.EngagementEvent")).
		Return(errors.New("broker unreachable"))

	err := svc.LikeMeal(ctx, caller, mealID)
	require.NoError(t, err)
}

func TestAverageRating(t *testing.T) {
	assert.Equal(t, float64(0), averageRating(nil))
	assert.Equal(t, 4.5, averageRating([]*entity.Review{{Rating: 4}, {Rating: 5}}))
	assert.Equal(t, 4.3, averageRating([]*entity.Review{{Rating: 5}, {Rating: 4}, {Rating: 4}}))
	assert.Equal(t, 3.7, averageRating([]*entity.Review{{Rating: 3}, {Rating: 4}, {Rating: 4}}))
}
