package impl

import (
	"context"
	"testing"
	"time"

	"harmony/config"
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

type userFixture struct {
	txManager        *mockRepo.MockTransactionManager
	factory          *mockRepo.MockRepositoryFactory
	userRepo         *mockRepo.MockUserRepository
	refreshTokenRepo *mockRepo.MockRefreshTokenRepository
	mealRepo         *mockRepo.MockMealRepository
	reviewRepo       *mockRepo.MockReviewRepository
	identityVerifier *mockSvc.MockIdentityVerifier
	tokenService     *mockSvc.MockTokenService
	svc              usecase.UserUsecase
}

func newUserFixture(t *testing.T, maxActiveSessions int) *userFixture {
	f := &userFixture{
		txManager:        mockRepo.NewMockTransactionManager(t),
		factory:          mockRepo.NewMockRepositoryFactory(t),
		userRepo:         mockRepo.NewMockUserRepository(t),
		refreshTokenRepo: mockRepo.NewMockRefreshTokenRepository(t),
		mealRepo:         mockRepo.NewMockMealRepository(t),
		reviewRepo:       mockRepo.NewMockReviewRepository(t),
		identityVerifier: mockSvc.NewMockIdentityVerifier(t),
		tokenService:     mockSvc.NewMockTokenService(t),
	}

	f.svc = NewUserService(UserServiceParams{
		TxManager:        f.txManager,
		UserRepo:         f.userRepo,
		RefreshTokenRepo: f.refreshTokenRepo,
		MealRepo:         f.mealRepo,
		ReviewRepo:       f.reviewRepo,
		IdentityVerifier: f.identityVerifier,
		TokenService:     f.tokenService,
		Config: &config.Config{
			Auth: &config.AuthConfig{MaxActiveSessions: maxActiveSessions},
		},
		Logger: testLogger(),
	})

	return f
}

func TestUserService_Login_FirstLoginCreatesBronzeUser(t *testing.T) {
	f := newUserFixture(t, 0)

	ctx := context.Background()
	identity := &entity.IdentityUser{
		SubjectID: "firebase-uid-1",
		Email:     "amy@example.com",
		Name:      "Amy",
		PhotoURL:  "https://img.example.com/amy.png",
	}

	f.identityVerifier.EXPECT().VerifyIDToken(ctx, "id-token").Return(identity, nil)

	expectTx(f.txManager, f.factory)
	f.factory.EXPECT().UserRepo().Return(f.userRepo)
	f.userRepo.EXPECT().FindByEmail(ctx, identity.Email).Return(nil, repository.ErrUserNotFound)
	f.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		RunAndReturn(func(_ context.Context, user *entity.User) error {
			assert.Equal(t, entity.TierBronze, user.Tier)
			assert.Equal(t, entity.RoleUser, user.Role)
			assert.Equal(t, identity.Name, user.Name)

			return nil
		})

	f.tokenService.EXPECT().
		GenerateTokens(mock.AnythingOfType("uuid.UUID"), identity.Email, "user").
		Return("access-token", "refresh-token", nil)

	f.refreshTokenRepo.EXPECT().DeleteExpiredRefreshTokens(ctx).Return(nil)
	f.tokenService.EXPECT().HashToken("refresh-token").Return("hashed")
	f.tokenService.EXPECT().RefreshTokenDuration().Return(24 * time.Hour)
	f.refreshTokenRepo.EXPECT().
		CreateRefreshToken(ctx, mock.AnythingOfType("*entity.RefreshToken")).
		RunAndReturn(func(_ context.Context, token *entity.RefreshToken) error {
			assert.Equal(t, "hashed", token.TokenHash)

			return nil
		})

	out, err := f.svc.Login(ctx, &usecase.LoginInput{IDToken: "id-token"})
	require.NoError(t, err)
	assert.Equal(t, "access-token", out.AccessToken)
	assert.Equal(t, "refresh-token", out.RefreshToken)
	assert.Equal(t, identity.Email, out.User.Email)
	assert.Equal(t, entity.TierBronze, out.User.Tier)
}

func TestUserService_Login_ExistingUserSyncsProfile(t *testing.T) {
	f := newUserFixture(t, 0)

	ctx := context.Background()
	userID := uuid.New()
	identity := &entity.IdentityUser{
		Email:    "amy@example.com",
		Name:     "Amy Chen",
		PhotoURL: "https://img.example.com/new.png",
	}
	existing := &entity.User{
		ID:       userID,
		Email:    identity.Email,
		Name:     "Amy",
		PhotoURL: "https://img.example.com/old.png",
		Tier:     entity.TierGold,
		Role:     entity.RoleUser,
	}

	f.identityVerifier.EXPECT().VerifyIDToken(ctx, "id-token").Return(identity, nil)

	expectTx(f.txManager, f.factory)
	f.factory.EXPECT().UserRepo().Return(f.userRepo)
	f.userRepo.EXPECT().FindByEmail(ctx, identity.Email).Return(existing, nil)
	f.userRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.User")).
		RunAndReturn(func(_ context.Context, user *entity.User) error {
			assert.Equal(t, "Amy Chen", user.Name)
			assert.Equal(t, identity.PhotoURL, user.PhotoURL)
			assert.Equal(t, entity.TierGold, user.Tier)

			return nil
		})

	f.tokenService.EXPECT().
		GenerateTokens(userID, identity.Email, "user").
		Return("access-token", "refresh-token", nil)

	f.refreshTokenRepo.EXPECT().DeleteExpiredRefreshTokens(ctx).Return(nil)
	f.tokenService.EXPECT().HashToken("refresh-token").Return("hashed")
	f.tokenService.EXPECT().RefreshTokenDuration().Return(24 * time.Hour)
	f.refreshTokenRepo.EXPECT().
		CreateRefreshToken(ctx, mock.AnythingOfType("*entity.RefreshToken")).
		Return(nil)

	out, err := f.svc.Login(ctx, &usecase.LoginInput{IDToken: "id-token"})
	require.NoError(t, err)
	assert.Equal(t, entity.TierGold, out.User.Tier)
}

func TestUserService_Login_InvalidIdentityToken(t *testing.T) {
	f := newUserFixture(t, 0)

	ctx := context.Background()
	f.identityVerifier.EXPECT().
		VerifyIDToken(ctx, "bad-token").
		Return(nil, errors.New("token expired"))

	_, err := f.svc.Login(ctx, &usecase.LoginInput{IDToken: "bad-token"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrIdentityTokenInvalid))
}

func TestUserService_Login_SessionCapPrunesOldest(t *testing.T) {
	f := newUserFixture(t, 2)

	ctx := context.Background()
	userID := uuid.New()
	identity := &entity.IdentityUser{Email: "amy@example.com", Name: "Amy"}
	existing := &entity.User{ID: userID, Email: identity.Email, Name: "Amy", Role: entity.RoleUser}

	f.identityVerifier.EXPECT().VerifyIDToken(ctx, "id-token").Return(identity, nil)

	expectTx(f.txManager, f.factory)
	f.factory.EXPECT().UserRepo().Return(f.userRepo)
	f.userRepo.EXPECT().FindByEmail(ctx, identity.Email).Return(existing, nil)

	f.tokenService.EXPECT().
		GenerateTokens(userID, identity.Email, "user").
		Return("access-token", "refresh-token", nil)

	oldest := &entity.RefreshToken{ID: uuid.New(), UserID: userID}
	newer := &entity.RefreshToken{ID: uuid.New(), UserID: userID}

	f.refreshTokenRepo.EXPECT().DeleteExpiredRefreshTokens(ctx).Return(nil)
	f.refreshTokenRepo.EXPECT().FindRefreshTokensByUserID(ctx, userID).
		Return([]*entity.RefreshToken{oldest, newer}, nil)
	f.refreshTokenRepo.EXPECT().DeleteRefreshToken(ctx, oldest.ID).Return(nil)
	f.tokenService.EXPECT().HashToken("refresh-token").Return("hashed")
	f.tokenService.EXPECT().RefreshTokenDuration().Return(24 * time.Hour)
	f.refreshTokenRepo.EXPECT().
		CreateRefreshToken(ctx, mock.AnythingOfType("*entity.RefreshToken")).
		Return(nil)

	_, err := f.svc.Login(ctx, &usecase.LoginInput{IDToken: "id-token"})
	require.NoError(t, err)
}

func TestUserService_RefreshToken_IssuesAccessTokenWithCurrentRole(t *testing.T) {
	f := newUserFixture(t, 0)

	ctx := context.Background()
	userID := uuid.New()

	f.tokenService.EXPECT().ValidateRefreshToken("refresh-token").
		Return(&service.Claims{UserID: userID, Email: "amy@example.com", Role: "user", Type: "refresh"}, nil)
	f.tokenService.EXPECT().HashToken("refresh-token").Return("hashed")
	f.refreshTokenRepo.EXPECT().FindRefreshTokenByHash(ctx, "hashed").
		Return(&entity.RefreshToken{ID: uuid.New(), UserID: userID}, nil)

	// Promoted since the session was opened; the new access token must carry
	// the current role.
	f.userRepo.EXPECT().FindByID(ctx, userID).
		Return(&entity.User{ID: userID, Email: "amy@example.com", Role: entity.RoleAdmin}, nil)
	f.tokenService.EXPECT().
		GenerateTokens(userID, "amy@example.com", "admin").
		Return("new-access", "unused-refresh", nil)

	out, err := f.svc.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "refresh-token"})
	require.NoError(t, err)
	assert.Equal(t, "new-access", out.AccessToken)
}

func TestUserService_RefreshToken_UnknownSession(t *testing.T) {
	f := newUserFixture(t, 0)

	ctx := context.Background()
	userID := uuid.New()

	f.tokenService.EXPECT().ValidateRefreshToken("refresh-token").
		Return(&service.Claims{UserID: userID, Email: "amy@example.com", Role: "user", Type: "refresh"}, nil)
	f.tokenService.EXPECT().HashToken("refresh-token").Return("hashed")
	f.refreshTokenRepo.EXPECT().FindRefreshTokenByHash(ctx, "hashed").
		Return(nil, repository.ErrRefreshTokenNotFound)

	_, err := f.svc.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "refresh-token"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenInvalid))
}

func TestUserService_RefreshToken_InvalidToken(t *testing.T) {
	f := newUserFixture(t, 0)

	f.tokenService.EXPECT().ValidateRefreshToken("garbage").
		Return(nil, errors.New("malformed token"))

	_, err := f.svc.RefreshToken(context.Background(), &usecase.RefreshTokenInput{RefreshToken: "garbage"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenInvalid))
}

func TestUserService_Logout_UnknownTokenIsIdempotent(t *testing.T) {
	f := newUserFixture(t, 0)

	ctx := context.Background()
	f.tokenService.EXPECT().HashToken("refresh-token").Return("hashed")
	f.refreshTokenRepo.EXPECT().DeleteRefreshTokenByHash(ctx, "hashed").
		Return(repository.ErrRefreshTokenNotFound)

	err := f.svc.Logout(ctx, &usecase.LogoutInput{RefreshToken: "refresh-token"})
	require.NoError(t, err)
}

func TestUserService_GetProfile(t *testing.T) {
	f := newUserFixture(t, 0)

	ctx := context.Background()
	caller := usecase.Caller{UserID: uuid.New(), Email: "amy@example.com", Role: "user"}
	user := &entity.User{ID: caller.UserID, Email: caller.Email}
	meals := []*entity.Meal{{ID: uuid.New()}}
	reviews := []*entity.Review{{ID: uuid.New()}}

	f.userRepo.EXPECT().FindByID(ctx, caller.UserID).Return(user, nil)
	f.mealRepo.EXPECT().FindByDistributor(ctx, caller.Email).Return(meals, nil)
	f.reviewRepo.EXPECT().FindByUserEmail(ctx, caller.Email).Return(reviews, nil)

	out, err := f.svc.GetProfile(ctx, caller)
	require.NoError(t, err)
	assert.Equal(t, user, out.User)
	assert.Equal(t, meals, out.Meals)
	assert.Equal(t, reviews, out.Reviews)
}

func TestUserService_ListUsers_NormalizesPaging(t *testing.T) {
	f := newUserFixture(t, 0)

	ctx := context.Background()
	users := []*entity.User{{ID: uuid.New()}}

	f.userRepo.EXPECT().FindPage(ctx, 1, 20).Return(users, int64(41), nil)

	out, err := f.svc.ListUsers(ctx, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, out.CurrentPage)
	assert.Equal(t, 3, out.TotalPages)
	assert.Equal(t, int64(41), out.TotalUsers)
}

func TestUserService_PromoteToAdmin_NotFound(t *testing.T) {
	f := newUserFixture(t, 0)

	ctx := context.Background()
	id := uuid.New()

	f.userRepo.EXPECT().UpdateRole(ctx, id, entity.RoleAdmin).Return(repository.ErrUserNotFound)

	err := f.svc.PromoteToAdmin(ctx, id)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}
