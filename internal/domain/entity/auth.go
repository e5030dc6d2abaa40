// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// RefreshToken represents a long-lived, authorized user session.
// It is used to obtain a new Access Token after the old one expires, without
// requiring the user to re-authenticate against the identity provider.
type RefreshToken struct {
	ID        uuid.UUID // The unique ID for this refresh token record.
	UserID    uuid.UUID // Links this session to the User it belongs to.
	TokenHash string    // SHA-256 hash of the raw refresh token for secure comparison in the database.
	ExpiresAt time.Time // The exact time when this refresh token expires and becomes invalid.
	CreatedAt time.Time // Timestamp of when this session was created (i.e., when the user logged in).
}

// IdentityUser is the verified identity returned by the external identity
// provider after an ID token check. It is the only trusted source of a
// user's email and display name at login time.
type IdentityUser struct {
	SubjectID     string // The provider's unique ID for the user.
	Email         string // The verified email address.
	Name          string // Display name as reported by the provider.
	PhotoURL      string // Profile picture URL as reported by the provider.
	EmailVerified bool   // Whether the provider has verified the email.
}
