// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Like is a join record stating that a user has liked a published meal.
// At most one like may exist per (meal, user) pair.
type Like struct {
	ID        uuid.UUID `json:"id"`         // The unique ID for this like record.
	MealID    uuid.UUID `json:"meal_id"`    // The liked meal.
	UserID    uuid.UUID `json:"user_id"`    // The liking user.
	UserName  string    `json:"user_name"`  // Denormalized user display name.
	UserEmail string    `json:"user_email"` // Denormalized user email.
	CreatedAt time.Time `json:"created_at"` // Timestamp of when the like was placed.
}
