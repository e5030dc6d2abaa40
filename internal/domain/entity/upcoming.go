// Package entity contains the core business objects of the project.
package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// UpcomingMeal is a staged, not-yet-published meal. Premium members can like
// it to signal demand; staff publish it into the catalog, which deletes the
// staged record. Likes must always equal len(LikedBy).
type UpcomingMeal struct {
	ID               uuid.UUID `json:"id"`                // The unique ID for this staged meal.
	Title            string    `json:"title"`             // Display title of the meal.
	Category         string    `json:"category"`          // Meal category.
	Price            float64   `json:"price"`             // Planned price.
	Description      string    `json:"description"`       // Free-text description.
	Ingredients      []string  `json:"ingredients"`       // Ingredient list.
	ImageURL         string    `json:"image_url"`         // URL of the meal image.
	DistributorName  string    `json:"distributor_name"`  // Name of the staff member who staged the meal.
	DistributorEmail string    `json:"distributor_email"` // Email of the staff member who staged the meal.
	Likes            int       `json:"likes"`             // Count of interested members; equals len(LikedBy).
	LikedBy          []string  `json:"liked_by"`          // Emails of members who liked this staged meal.
	CreatedAt        time.Time `json:"created_at"`        // Timestamp of when the meal was staged.
}

// LikedByUser reports whether the given email has already liked this staged meal.
func (m *UpcomingMeal) LikedByUser(email string) bool {
	return slices.Contains(m.LikedBy, email)
}

// ToMeal converts the staged meal into a fresh catalog meal with all derived
// counters reset, ready for publication.
func (m *UpcomingMeal) ToMeal(now time.Time) *Meal {
	return &Meal{
		ID:               uuid.New(),
		Title:            m.Title,
		Category:         m.Category,
		Price:            m.Price,
		Description:      m.Description,
		Ingredients:      m.Ingredients,
		ImageURL:         m.ImageURL,
		DistributorName:  m.DistributorName,
		DistributorEmail: m.DistributorEmail,
		Likes:            0,
		Rating:           0,
		ReviewsCount:     0,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}
