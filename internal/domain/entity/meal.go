// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Meal represents a published meal in the hostel catalog.
// The Likes, Rating and ReviewsCount fields are derived counters maintained
// by the engagement aggregation; the likes and reviews tables remain the
// source of truth.
type Meal struct {
	ID               uuid.UUID `json:"id"`                // The Global Unique Identifier (GUID) for the meal.
	Title            string    `json:"title"`             // Display title of the meal.
	Category         string    `json:"category"`          // Meal category, e.g. "breakfast", "lunch", "dinner".
	Price            float64   `json:"price"`             // Price in the platform currency.
	Description      string    `json:"description"`       // Free-text description.
	Ingredients      []string  `json:"ingredients"`       // Ingredient list.
	ImageURL         string    `json:"image_url"`         // URL of the meal image on the image host.
	DistributorName  string    `json:"distributor_name"`  // Name of the staff member who added the meal.
	DistributorEmail string    `json:"distributor_email"` // Email of the staff member who added the meal.
	Likes            int       `json:"likes"`             // Derived: number of like rows referencing this meal.
	Rating           float64   `json:"rating"`            // Derived: mean review rating rounded to one decimal, 0 when unreviewed.
	ReviewsCount     int       `json:"reviews_count"`     // Derived: number of review rows referencing this meal.
	CreatedAt        time.Time `json:"created_at"`        // Timestamp of when the meal was published.
	UpdatedAt        time.Time `json:"updated_at"`        // Timestamp of the last modification.
}

// MealFilter narrows a catalog listing.
type MealFilter struct {
	Search   string  // Case-insensitive substring match on title or category.
	Category string  // Case-insensitive category filter.
	MinPrice float64 // Inclusive lower price bound.
	MaxPrice float64 // Inclusive upper price bound; 0 means unbounded.
	Page     int     // 1-based page number.
	Limit    int     // Page size.
}

// PriceRange is the min/max price over the whole catalog, used by the
// listing endpoint to seed the client's price slider.
type PriceRange struct {
	MinPrice float64 `json:"minPrice"`
	MaxPrice float64 `json:"maxPrice"`
}

// MealPage is one page of a filtered catalog listing plus the listing
// metadata the client renders around it.
type MealPage struct {
	Meals       []*Meal    `json:"meals"`
	TotalPages  int        `json:"totalPages"`
	CurrentPage int        `json:"currentPage"`
	TotalMeals  int64      `json:"totalMeals"`
	Categories  []string   `json:"categories"`
	PriceRange  PriceRange `json:"priceRange"`
}
