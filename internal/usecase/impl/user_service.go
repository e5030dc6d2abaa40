// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"harmony/config"
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

// userService implements the UserUsecase interface.
type userService struct {
	txManager         repository.TransactionManager
	userRepo          repository.UserRepository
	refreshTokenRepo  repository.RefreshTokenRepository
	mealRepo          repository.MealRepository
	reviewRepo        repository.ReviewRepository
	identityVerifier  service.IdentityVerifier
	tokenService      service.TokenService
	maxActiveSessions int
	logger            *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	UserRepo         repository.UserRepository
	RefreshTokenRepo repository.RefreshTokenRepository
	MealRepo         repository.MealRepository
	ReviewRepo       repository.ReviewRepository
	IdentityVerifier service.IdentityVerifier `optional:"true"`
	TokenService     service.TokenService
	Config           *config.Config
	Logger           *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	maxActiveSessions := 0
	if params.Config != nil && params.Config.Auth != nil {
		maxActiveSessions = params.Config.Auth.MaxActiveSessions
	}

	return &userService{
		txManager:         params.TxManager,
		userRepo:          params.UserRepo,
		refreshTokenRepo:  params.RefreshTokenRepo,
		mealRepo:          params.MealRepo,
		reviewRepo:        params.ReviewRepo,
		identityVerifier:  params.IdentityVerifier,
		tokenService:      params.TokenService,
		maxActiveSessions: maxActiveSessions,
		logger:            params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login verifies the provider ID token, upserts the matching user record and
// opens a session. First login creates the account on the base tier.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	if srv.identityVerifier == nil {
		return nil, domainerrors.ErrInternalError.WrapMessage("identity provider is not configured")
	}

	identity, err := srv.identityVerifier.VerifyIDToken(ctx, input.IDToken)
	if err != nil {
		srv.log(ctx).Warn("Identity token verification failed", slog.Any("error", err))

		return nil, domainerrors.ErrIdentityTokenInvalid.WrapMessage("failed to verify identity token")
	}

	var user *entity.User
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		existing, err := userRepo.FindByEmail(ctx, identity.Email)
		if errors.Is(err, repository.ErrUserNotFound) {
			user = buildNewUserEntity(identity)
			if err := userRepo.Create(ctx, user); err != nil {
				return errors.Wrap(err, "failed to create user")
			}

			srv.log(ctx).Info("Registered new user", slog.String("email", user.Email))

			return nil
		}
		if err != nil {
			return errors.Wrap(err, "failed to find user")
		}

		user = existing
		if syncIdentityProfile(user, identity) {
			user.UpdatedAt = time.Now()
			if err := userRepo.Update(ctx, user); err != nil {
				return errors.Wrap(err, "failed to sync user profile")
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(user.ID, user.Email, user.Role.String())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	if err := srv.storeRefreshToken(ctx, user.ID, refreshToken); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("User logged in", slog.String("email", user.Email), slog.String("tier", user.Tier.String()))

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}

// storeRefreshToken persists the session and enforces the active session cap
// by pruning the oldest sessions first.
func (srv *userService) storeRefreshToken(ctx context.Context, userID uuid.UUID, refreshToken string) error {
	if err := srv.refreshTokenRepo.DeleteExpiredRefreshTokens(ctx); err != nil {
		srv.log(ctx).Warn("Failed to prune expired refresh tokens", slog.Any("error", err))
	}

	if srv.maxActiveSessions > 0 {
		sessions, err := srv.refreshTokenRepo.FindRefreshTokensByUserID(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to list active sessions")
		}

		for len(sessions) >= srv.maxActiveSessions {
			if err := srv.refreshTokenRepo.DeleteRefreshToken(ctx, sessions[0].ID); err != nil {
				return errors.Wrap(err, "failed to prune oldest session")
			}
			sessions = sessions[1:]
		}
	}

	token := &entity.RefreshToken{
		ID:        uuid.New(),
		UserID:    userID,
		TokenHash: srv.tokenService.HashToken(refreshToken),
		ExpiresAt: time.Now().Add(srv.tokenService.RefreshTokenDuration()),
		CreatedAt: time.Now(),
	}
	if err := srv.refreshTokenRepo.CreateRefreshToken(ctx, token); err != nil {
		return errors.Wrap(err, "failed to store refresh token")
	}

	return nil
}

// RefreshToken exchanges a valid, stored refresh token for a new access token.
func (srv *userService) RefreshToken(ctx context.Context, input *usecase.RefreshTokenInput) (*usecase.RefreshTokenOutput, error) {
	claims, err := srv.tokenService.ValidateRefreshToken(input.RefreshToken)
	if err != nil {
		return nil, domainerrors.ErrRefreshTokenInvalid.WrapMessage("refresh token failed validation")
	}

	tokenHash := srv.tokenService.HashToken(input.RefreshToken)
	if _, err := srv.refreshTokenRepo.FindRefreshTokenByHash(ctx, tokenHash); err != nil {
		if errors.Is(err, repository.ErrRefreshTokenNotFound) {
			return nil, domainerrors.ErrRefreshTokenInvalid.WrapMessage("session not found or expired")
		}

		return nil, errors.Wrap(err, "failed to look up session")
	}

	// Role may have changed since the session was opened; reload it so the new
	// access token carries the current role.
	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrRefreshTokenInvalid.WrapMessage("session user no longer exists")
		}

		return nil, errors.Wrap(err, "failed to load session user")
	}

	accessToken, _, err := srv.tokenService.GenerateTokens(user.ID, user.Email, user.Role.String())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	return &usecase.RefreshTokenOutput{AccessToken: accessToken}, nil
}

// Logout ends the session for the given refresh token. Unknown tokens are
// treated as already logged out.
func (srv *userService) Logout(ctx context.Context, input *usecase.LogoutInput) error {
	tokenHash := srv.tokenService.HashToken(input.RefreshToken)
	err := srv.refreshTokenRepo.DeleteRefreshTokenByHash(ctx, tokenHash)
	if err != nil && !errors.Is(err, repository.ErrRefreshTokenNotFound) {
		return errors.Wrap(err, "failed to delete session")
	}

	return nil
}

// GetProfile returns the caller's account together with the meals they have
// distributed and the reviews they have written.
func (srv *userService) GetProfile(ctx context.Context, caller usecase.Caller) (*usecase.ProfileOutput, error) {
	user, err := srv.userRepo.FindByID(ctx, caller.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("profile user not found")
		}

		return nil, errors.Wrap(err, "failed to load profile user")
	}

	meals, err := srv.mealRepo.FindByDistributor(ctx, user.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load distributed meals")
	}

	reviews, err := srv.reviewRepo.FindByUserEmail(ctx, user.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load authored reviews")
	}

	return &usecase.ProfileOutput{
		User:    user,
		Meals:   meals,
		Reviews: reviews,
	}, nil
}

// IsAdmin reports whether the stored user behind the email holds the admin role.
func (srv *userService) IsAdmin(ctx context.Context, email string) (bool, error) {
	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return false, domainerrors.ErrUserNotFound.WrapMessage("user not found for admin check")
		}

		return false, errors.Wrap(err, "failed to load user for admin check")
	}

	return user.IsAdmin(), nil
}

// ListUsers returns one page of the user directory.
func (srv *userService) ListUsers(ctx context.Context, page, limit int) (*usecase.UserPageOutput, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}

	users, total, err := srv.userRepo.FindPage(ctx, page, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))

	return &usecase.UserPageOutput{
		Users:       users,
		TotalPages:  totalPages,
		CurrentPage: page,
		TotalUsers:  total,
	}, nil
}

// PromoteToAdmin grants the admin role to an existing user.
func (srv *userService) PromoteToAdmin(ctx context.Context, id uuid.UUID) error {
	if err := srv.userRepo.UpdateRole(ctx, id, entity.RoleAdmin); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound.WrapMessage("user to promote not found")
		}

		return errors.Wrap(err, "failed to promote user")
	}

	srv.log(ctx).Info("User promoted to admin", slog.String("user_id", id.String()))

	return nil
}

// DeleteUser removes a user account.
func (srv *userService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	if err := srv.userRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound.WrapMessage("user to delete not found")
		}

		return errors.Wrap(err, "failed to delete user")
	}

	srv.log(ctx).Info("User deleted", slog.String("user_id", id.String()))

	return nil
}

// buildNewUserEntity creates a first-login user on the base tier.
func buildNewUserEntity(identity *entity.IdentityUser) *entity.User {
	now := time.Now()

	return &entity.User{
		ID:        uuid.New(),
		Email:     identity.Email,
		Name:      identity.Name,
		PhotoURL:  identity.PhotoURL,
		Tier:      entity.TierBronze,
		Role:      entity.RoleUser,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// syncIdentityProfile copies provider-owned profile fields onto the stored
// user, reporting whether anything changed.
func syncIdentityProfile(user *entity.User, identity *entity.IdentityUser) bool {
	changed := false
	if identity.Name != "" && user.Name != identity.Name {
		user.Name = identity.Name
		changed = true
	}
	if identity.PhotoURL != "" && user.PhotoURL != identity.PhotoURL {
		user.PhotoURL = identity.PhotoURL
		changed = true
	}

	return changed
}
