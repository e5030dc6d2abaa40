// Package firebase adapts the Firebase Auth SDK to the identity verifier
// interface used by the login flow.
package firebase

import (
	"context"
	"fmt"

	"harmony/internal/domain/entity"
	"harmony/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

type firebaseVerifier struct {
	client *auth.Client
}

// NewVerifier creates an identity verifier backed by Firebase Auth
func NewVerifier(ctx context.Context, credentialsPath string) (service.IdentityVerifier, error) {
	opt := option.WithCredentialsFile(credentialsPath)
	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get auth client: %w", err)
	}

	return &firebaseVerifier{
		client: client,
	}, nil
}

// VerifyIDToken validates the Firebase-issued ID token and extracts the
// identity it asserts.
func (v *firebaseVerifier) VerifyIDToken(ctx context.Context, idToken string) (*entity.IdentityUser, error) {
	token, err := v.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, fmt.Errorf("failed to verify id token: %w", err)
	}

	identity := &entity.IdentityUser{
		SubjectID: token.UID,
	}
	if email, ok := token.Claims["email"].(string); ok {
		identity.Email = email
	}
	if name, ok := token.Claims["name"].(string); ok {
		identity.Name = name
	}
	if picture, ok := token.Claims["picture"].(string); ok {
		identity.PhotoURL = picture
	}
	if verified, ok := token.Claims["email_verified"].(bool); ok {
		identity.EmailVerified = verified
	}

	return identity, nil
}
