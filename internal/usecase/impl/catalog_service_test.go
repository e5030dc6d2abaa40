package impl

import (
	"context"
	"io"
	"strings"
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

func newCatalogFixture(t *testing.T) (
	*mockRepo.MockMealRepository,
	*mockRepo.MockReviewRepository,
	*mockRepo.MockLikeRepository,
	*mockRepo.MockUserRepository,
	*mockSvc.MockImageStore,
	usecase.CatalogUsecase,
) {
	mealRepo := mockRepo.NewMockMealRepository(t)
	reviewRepo := mockRepo.NewMockReviewRepository(t)
	likeRepo := mockRepo.NewMockLikeRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	imageStore := mockSvc.NewMockImageStore(t)
	svc := NewCatalogService(CatalogServiceParams{
		MealRepo:   mealRepo,
		ReviewRepo: reviewRepo,
		LikeRepo:   likeRepo,
		UserRepo:   userRepo,
		ImageStore: imageStore,
		Logger:     testLogger(),
	})

	return mealRepo, reviewRepo, likeRepo, userRepo, imageStore, svc
}

func TestCatalogService_ListMeals_DefaultsAndMetadata(t *testing.T) {
	mealRepo, _, _, _, _, svc := newCatalogFixture(t)

	ctx := context.Background()
	meals := []*entity.Meal{{ID: uuid.New()}, {ID: uuid.New()}}

	mealRepo.EXPECT().
		FindPage(ctx, mock.AnythingOfType("*entity.MealFilter")).
		RunAndReturn(func(_ context.Context, filter *entity.MealFilter) ([]*entity.Meal, int64, error) {
			assert.Equal(t, 1, filter.Page)
			assert.Equal(t, defaultCatalogPageSize, filter.Limit)

			return meals, 20, nil
		})
	mealRepo.EXPECT().Categories(ctx).Return([]string{"breakfast", "lunch"}, nil)
	mealRepo.EXPECT().PriceRange(ctx).Return(entity.PriceRange{MinPrice: 30, MaxPrice: 250}, nil)

	page, err := svc.ListMeals(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, meals, page.Meals)
	assert.Equal(t, 1, page.CurrentPage)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, int64(20), page.TotalMeals)
	assert.Equal(t, []string{"breakfast", "lunch"}, page.Categories)
	assert.Equal(t, float64(250), page.PriceRange.MaxPrice)
}

func TestCatalogService_GetMealDetail_AnonymousNeverLiked(t *testing.T) {
	mealRepo, reviewRepo, _, _, _, svc := newCatalogFixture(t)

	ctx := context.Background()
	id := uuid.New()

	mealRepo.EXPECT().FindByID(ctx, id).Return(&entity.Meal{ID: id}, nil)
	reviewRepo.EXPECT().FindByMeal(ctx, id).Return([]*entity.Review{}, nil)

	out, err := svc.GetMealDetail(ctx, id, nil)
	require.NoError(t, err)
	assert.False(t, out.Liked)
}

func TestCatalogService_GetMealDetail_LikedByCaller(t *testing.T) {
	mealRepo, reviewRepo, likeRepo, _, _, svc := newCatalogFixture(t)

	ctx := context.Background()
	id := uuid.New()
	caller := &usecase.Caller{UserID: uuid.New(), Email: "amy@example.com", Role: "user"}

	mealRepo.EXPECT().FindByID(ctx, id).Return(&entity.Meal{ID: id}, nil)
	reviewRepo.EXPECT().FindByMeal(ctx, id).Return([]*entity.Review{{ID: uuid.New()}}, nil)
	likeRepo.EXPECT().Exists(ctx, id, caller.UserID).Return(true, nil)

	out, err := svc.GetMealDetail(ctx, id, caller)
	require.NoError(t, err)
	assert.True(t, out.Liked)
	assert.Len(t, out.Reviews, 1)
}

func TestCatalogService_GetMealDetail_NotFound(t *testing.T) {
	mealRepo, _, _, _, _, svc := newCatalogFixture(t)

	ctx := context.Background()
	id := uuid.New()

	mealRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrMealNotFound)

	_, err := svc.GetMealDetail(ctx, id, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrMealNotFound))
}

func TestCatalogService_TopMealsByCategory_AllDisablesFilter(t *testing.T) {
	mealRepo, _, _, _, _, svc := newCatalogFixture(t)

	ctx := context.Background()

	mealRepo.EXPECT().FindTopByCategory(ctx, "", 5).Return([]*entity.Meal{}, nil)

	_, err := svc.TopMealsByCategory(ctx, "All", 5)
	require.NoError(t, err)
}

func TestCatalogService_AddMeal_AttributesDistributor(t *testing.T) {
	mealRepo, _, _, userRepo, _, svc := newCatalogFixture(t)

	ctx := context.Background()
	caller := usecase.Caller{UserID: uuid.New(), Email: "staff@example.com", Role: "admin"}

	userRepo.EXPECT().FindByID(ctx, caller.UserID).
		Return(&entity.User{ID: caller.UserID, Email: caller.Email, Name: "Staff"}, nil)
	mealRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Meal")).
		RunAndReturn(func(_ context.Context, meal *entity.Meal) error {
			assert.Equal(t, "Staff", meal.DistributorName)
			assert.Equal(t, caller.Email, meal.DistributorEmail)
			assert.Equal(t, 0, meal.Likes)
			assert.Equal(t, float64(0), meal.Rating)
			assert.Equal(t, 0, meal.ReviewsCount)

			return nil
		})

	meal, err := svc.AddMeal(ctx, caller, &usecase.AddMealInput{
		Title:    "滷肉飯",
		Category: "lunch",
		Price:    120,
	})
	require.NoError(t, err)
	assert.Equal(t, "滷肉飯", meal.Title)
}

func TestCatalogService_UpdateMeal_KeepsCountersAndAttribution(t *testing.T) {
	mealRepo, _, _, _, _, svc := newCatalogFixture(t)

	ctx := context.Background()
	id := uuid.New()
	existing := &entity.Meal{
		ID:               id,
		Title:            "滷肉飯",
		Price:            120,
		DistributorEmail: "staff@example.com",
		Likes:            9,
		Rating:           4.4,
		ReviewsCount:     6,
	}

	mealRepo.EXPECT().FindByID(ctx, id).Return(existing, nil)
	mealRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Meal")).
		RunAndReturn(func(_ context.Context, meal *entity.Meal) error {
			assert.Equal(t, "招牌滷肉飯", meal.Title)
			assert.Equal(t, float64(135), meal.Price)
			assert.Equal(t, 9, meal.Likes)
			assert.Equal(t, 4.4, meal.Rating)
			assert.Equal(t, "staff@example.com", meal.DistributorEmail)

			return nil
		})

	updated, err := svc.UpdateMeal(ctx, id, &usecase.UpdateMealInput{
		Title:    "招牌滷肉飯",
		Category: "lunch",
		Price:    135,
	})
	require.NoError(t, err)
	assert.Equal(t, "招牌滷肉飯", updated.Title)
}

func TestCatalogService_UploadImage_KeepsExtension(t *testing.T) {
	_, _, _, _, imageStore, svc := newCatalogFixture(t)

	ctx := context.Background()
	content := strings.NewReader("fake-image-bytes")

	imageStore.EXPECT().
		Save(ctx, mock.AnythingOfType("string"), "image/png", content).
		RunAndReturn(func(_ context.Context, name, _ string, _ io.Reader) (string, error) {
			assert.True(t, strings.HasSuffix(name, ".png"))

			return "https://img.example.com/" + name, nil
		})

	url, err := svc.UploadImage(ctx, &usecase.UploadImageInput{
		FileName:    "braised.png",
		ContentType: "image/png",
		Content:     content,
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "https://img.example.com/"))
}

func TestCatalogService_UploadImage_StoreNotConfigured(t *testing.T) {
	mealRepo := mockRepo.NewMockMealRepository(t)
	reviewRepo := mockRepo.NewMockReviewRepository(t)
	likeRepo := mockRepo.NewMockLikeRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	svc := NewCatalogService(CatalogServiceParams{
		MealRepo:   mealRepo,
		ReviewRepo: reviewRepo,
		LikeRepo:   likeRepo,
		UserRepo:   userRepo,
		Logger:     testLogger(),
	})

	_, err := svc.UploadImage(context.Background(), &usecase.UploadImageInput{
		FileName:    "braised.png",
		ContentType: "image/png",
		Content:     strings.NewReader(""),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrImageStorageUnavailable))
}
