package usecase

import (
	"context"

	"harmony/internal/domain/entity"

	"github.com/google/uuid"
)

// RequestUsecase defines the interface for the meal request lifecycle:
// premium members place requests, staff serve them.
type RequestUsecase interface {
	// CreateRequest places a request for a meal. Bronze-tier members are
	// rejected; a member holds at most one request per meal, ever.
	CreateRequest(ctx context.Context, caller Caller, mealID uuid.UUID) (*entity.MealRequest, error)

	// ListMyRequests returns all of the caller's requests, any status.
	ListMyRequests(ctx context.Context, caller Caller) ([]*entity.MealRequest, error)

	// CancelRequest deletes the caller's pending request. Delivered or
	// foreign requests surface as not found.
	CancelRequest(ctx context.Context, caller Caller, id uuid.UUID) error

	// ListServeQueue returns all requests for the staff serve view, with an
	// optional substring filter on meal title or requester name. Admin only.
	ListServeQueue(ctx context.Context, search string) ([]*entity.MealRequest, error)

	// MarkDelivered transitions a pending request to delivered and notifies
	// the requester. Admin only.
	MarkDelivered(ctx context.Context, id uuid.UUID) error

	// PickupTicket renders the PNG pickup QR for the caller's own request.
	PickupTicket(ctx context.Context, caller Caller, id uuid.UUID) ([]byte, error)
}
