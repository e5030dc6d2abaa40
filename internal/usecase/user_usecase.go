// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"harmony/internal/domain/entity"

	"github.com/google/uuid"
)

// Caller identifies the authenticated user behind a request, as asserted by
// the access token. Fields that can change after issuance (tier, name) are
// loaded fresh from storage by the use cases that need them.
type Caller struct {
	UserID uuid.UUID
	Email  string
	Role   string
}

// IsAdmin reports whether the caller's token carries the admin role.
func (c Caller) IsAdmin() bool {
	return c.Role == string(entity.RoleAdmin)
}

// --- Input DTOs ---

// LoginInput defines the data required for a user to log in.
// The ID token comes from the identity provider's client SDK.
type LoginInput struct {
	IDToken string
}

// RefreshTokenInput defines the data required to refresh an access token.
type RefreshTokenInput struct {
	RefreshToken string
}

// LogoutInput defines the data required to log out.
type LogoutInput struct {
	RefreshToken string
}

// --- Output DTOs ---

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// RefreshTokenOutput returns the new access token.
type RefreshTokenOutput struct {
	AccessToken string
}

// ProfileOutput bundles a user with their recent activity.
type ProfileOutput struct {
	User    *entity.User
	Meals   []*entity.Meal   // Meals distributed by the user, newest first.
	Reviews []*entity.Review // Reviews written by the user, newest first.
}

// UserPageOutput is one page of the admin user listing.
type UserPageOutput struct {
	Users       []*entity.User
	TotalPages  int
	CurrentPage int
	TotalUsers  int64
}

// UserUsecase defines the interface for identity, session and user
// management operations.
type UserUsecase interface {
	// Login verifies the identity token, upserts the user and issues tokens.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// RefreshToken issues a new access token for a valid session.
	RefreshToken(ctx context.Context, input *RefreshTokenInput) (*RefreshTokenOutput, error)

	// Logout deletes the session for the given refresh token.
	Logout(ctx context.Context, input *LogoutInput) error

	// GetProfile returns the caller's profile with recent activity.
	GetProfile(ctx context.Context, caller Caller) (*ProfileOutput, error)

	// IsAdmin reports whether the user with the given email is an admin.
	IsAdmin(ctx context.Context, email string) (bool, error)

	// ListUsers returns one page of the user directory. Admin only.
	ListUsers(ctx context.Context, page, limit int) (*UserPageOutput, error)

	// PromoteToAdmin grants the admin role to the given user. Admin only.
	PromoteToAdmin(ctx context.Context, id uuid.UUID) error

	// DeleteUser removes a user account. Admin only.
	DeleteUser(ctx context.Context, id uuid.UUID) error
}
