package service

import (
	"context"
)

// EngagementEvent describes one engagement mutation on a meal, emitted after
// the aggregation commits so downstream consumers (analytics, feeds) can
// react without polling the database.
type EngagementEvent struct {
	RequestID    string  `json:"request_id,omitempty"` // For distributed tracing
	Type         string  `json:"type"`                 // meal.liked | review.created | review.updated | review.deleted
	MealID       string  `json:"meal_id"`
	UserEmail    string  `json:"user_email"`
	Rating       float64 `json:"rating,omitempty"`        // Meal rating after the mutation, where applicable.
	ReviewsCount int     `json:"reviews_count,omitempty"` // Meal review count after the mutation, where applicable.
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishEngagementEvent publishes an engagement event for async processing
	PublishEngagementEvent(ctx context.Context, event *EngagementEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
