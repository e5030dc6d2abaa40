// Package constants centralizes shared domain-level constants.
package constants

// Pub/Sub provider types
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Engagement event types published after an aggregation commits.
const (
	EventMealLiked     = "meal.liked"
	EventReviewCreated = "review.created"
	EventReviewUpdated = "review.updated"
	EventReviewDeleted = "review.deleted"
)
