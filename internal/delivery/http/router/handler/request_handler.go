package handler

import (
	"log/slog"
	"net/http"

	"harmony/internal/delivery/http/middleware"
	"harmony/internal/delivery/http/response"
	"harmony/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RequestHandler holds dependencies for the meal request lifecycle handlers.
type RequestHandler struct {
	uc     usecase.RequestUsecase
	logger *slog.Logger
}

// NewRequestHandler is the constructor for RequestHandler, injected by Fx.
func NewRequestHandler(uc usecase.RequestUsecase, logger *slog.Logger) *RequestHandler {
	return &RequestHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreateRequest places the caller's request for a meal.
func (h *RequestHandler) CreateRequest(c echo.Context) error {
	caller, ok := middleware.GetCaller(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authenticated caller")
	}

	mealID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid meal ID")
	}

	request, err := h.uc.CreateRequest(c.Request().Context(), caller, mealID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, request, "Meal requested successfully")
}

// ListMyRequests returns all of the caller's requests, any status.
func (h *RequestHandler) ListMyRequests(c echo.Context) error {
	caller, ok := middleware.GetCaller(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authenticated caller")
	}

	requests, err := h.uc.ListMyRequests(c.Request().Context(), caller)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, requests, "")
}

// CancelRequest deletes the caller's pending request.
func (h *RequestHandler) CancelRequest(c echo.Context) error {
	caller, ok := middleware.GetCaller(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authenticated caller")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid request ID")
	}

	if err := h.uc.CancelRequest(c.Request().Context(), caller, id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Request cancelled successfully")
}

// PickupTicket streams the PNG pickup QR for the caller's own request.
func (h *RequestHandler) PickupTicket(c echo.Context) error {
	caller, ok := middleware.GetCaller(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authenticated caller")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid request ID")
	}

	png, err := h.uc.PickupTicket(c.Request().Context(), caller, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// ListServeQueue returns the staff serve view, optionally filtered. Admin only.
func (h *RequestHandler) ListServeQueue(c echo.Context) error {
	requests, err := h.uc.ListServeQueue(c.Request().Context(), c.QueryParam("search"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, requests, "")
}

// MarkDelivered transitions a pending request to delivered. Admin only.
func (h *RequestHandler) MarkDelivered(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid request ID")
	}

	if err := h.uc.MarkDelivered(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Request marked as delivered")
}
