// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"harmony/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUpcomingMealNotFound is returned when a staged meal is not found.
var ErrUpcomingMealNotFound = errors.New("upcoming meal not found")

// UpcomingMealRepository defines the interface for staged-meal persistence.
type UpcomingMealRepository interface {
	// Create persists a new staged meal.
	Create(ctx context.Context, meal *entity.UpcomingMeal) error

	// FindByID retrieves a staged meal by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.UpcomingMeal, error)

	// FindAll retrieves all staged meals, most liked first.
	FindAll(ctx context.Context) ([]*entity.UpcomingMeal, error)

	// Update rewrites a staged meal, including its likedBy set and like count.
	Update(ctx context.Context, meal *entity.UpcomingMeal) error

	// Delete removes a staged meal by ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
