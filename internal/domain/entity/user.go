// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core entity in the system, representing a unique hostel member account.
type User struct {
	ID        uuid.UUID      // The Global Unique Identifier (GUID) for the user.
	Email     string         // The user's primary contact email, used as the login identifier.
	Name      string         // The user's display name.
	PhotoURL  string         // URL of the user's profile picture on the image host.
	Tier      MembershipTier // The user's current membership tier. Mutated only by a successful payment.
	Role      Role           // The user's role. Mutated only by an existing admin.
	CreatedAt time.Time      // Timestamp of when this user account was created (first login).
	UpdatedAt time.Time      // Timestamp of the last modification to this user's data.
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
