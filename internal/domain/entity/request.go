// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// RequestStatus represents the lifecycle state of a meal request.
type RequestStatus string

const (
	// RequestStatusPending is the initial state of every request.
	RequestStatusPending RequestStatus = "pending"
	// RequestStatusDelivered is the terminal state, set only by staff.
	RequestStatusDelivered RequestStatus = "delivered"
)

// IsValid checks if the RequestStatus is a valid value.
func (s RequestStatus) IsValid() bool {
	switch s {
	case RequestStatusPending, RequestStatusDelivered:
		return true
	default:
		return false
	}
}

// MealRequest is a premium member's request for a specific meal. It carries a
// denormalized snapshot of the meal so the serve queue and the member's
// request list render without joining against the catalog. The Likes, Rating
// and ReviewsCount mirrors are kept in sync by the engagement aggregation.
type MealRequest struct {
	ID           uuid.UUID     `json:"id"`            // The unique ID for this request.
	MealID       uuid.UUID     `json:"meal_id"`       // The requested meal.
	UserID       uuid.UUID     `json:"user_id"`       // The requesting user.
	UserName     string        `json:"user_name"`     // Denormalized requester display name.
	UserEmail    string        `json:"user_email"`    // Denormalized requester email; ownership checks compare against this.
	Title        string        `json:"title"`         // Snapshot of the meal title.
	Category     string        `json:"category"`      // Snapshot of the meal category.
	Price        float64       `json:"price"`         // Snapshot of the meal price.
	ImageURL     string        `json:"image_url"`     // Snapshot of the meal image.
	Likes        int           `json:"likes"`         // Mirror of the source meal's like counter.
	Rating       float64       `json:"rating"`        // Mirror of the source meal's rating.
	ReviewsCount int           `json:"reviews_count"` // Mirror of the source meal's review counter.
	Status       RequestStatus `json:"status"`        // pending or delivered.
	CreatedAt    time.Time     `json:"created_at"`    // Timestamp of when the request was placed.
	UpdatedAt    time.Time     `json:"updated_at"`    // Timestamp of the last status change.
}
