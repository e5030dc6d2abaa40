// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Review rating bounds.
const (
	MinReviewRating = 1
	MaxReviewRating = 5
)

// Review is a user's written review of a meal, with a numeric rating that
// feeds the meal's derived average rating.
type Review struct {
	ID        uuid.UUID `json:"id"`         // The unique ID for this review.
	MealID    uuid.UUID `json:"meal_id"`    // The meal being reviewed.
	UserID    uuid.UUID `json:"user_id"`    // The authoring user.
	UserName  string    `json:"user_name"`  // Denormalized author display name.
	UserEmail string    `json:"user_email"` // Denormalized author email; ownership checks compare against this.
	Text      string    `json:"text"`       // Free-text review body.
	Rating    float64   `json:"rating"`     // Numeric rating, bounded 1-5.
	CreatedAt time.Time `json:"created_at"` // Timestamp of when the review was written.
}
