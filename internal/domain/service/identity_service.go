package service

import (
	"context"

	"harmony/internal/domain/entity"
)

// IdentityVerifier defines the interface to the external identity provider.
// The provider authenticates the user in the client; the server only ever
// sees the resulting ID token and must verify it before minting a session.
type IdentityVerifier interface {
	// VerifyIDToken validates the provider-issued ID token and returns the
	// verified identity it asserts.
	VerifyIDToken(ctx context.Context, idToken string) (*entity.IdentityUser, error)
}
