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

// ReviewHandler holds dependencies for the engagement handlers: likes and
// reviews.
type ReviewHandler struct {
	uc     usecase.EngagementUsecase
	logger *slog.Logger
}

// NewReviewHandler is the constructor for ReviewHandler, injected by Fx.
func NewReviewHandler(uc usecase.EngagementUsecase, logger *slog.Logger) *ReviewHandler {
	return &ReviewHandler{
		uc:     uc,
		logger: logger,
	}
}

type reviewRequest struct {
	Text   string  `json:"text" validate:"required"`
	Rating float64 `json:"rating" validate:"required,gte=1,lte=5"`
}

// LikeMeal records the caller's like on a meal.
func (h *ReviewHandler) LikeMeal(c echo.Context) error {
	caller, ok := middleware.GetCaller(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authenticated caller")
	}

	mealID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid meal ID")
	}

	if err := h.uc.LikeMeal(c.Request().Context(), caller, mealID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Meal liked successfully")
}

// AddReview creates the caller's review on a meal.
func (h *ReviewHandler) AddReview(c echo.Context) error {
	caller, ok := middleware.GetCaller(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authenticated caller")
	}

	mealID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid meal ID")
	}

	var req reviewRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	review, err := h.uc.AddReview(c.Request().Context(), caller, mealID, &usecase.AddReviewInput{
		Text:   req.Text,
		Rating: req.Rating,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, review, "Review added successfully")
}

// UpdateReview edits the caller's review.
func (h *ReviewHandler) UpdateReview(c echo.Context) error {
	caller, ok := middleware.GetCaller(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authenticated caller")
	}

	reviewID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid review ID")
	}

	var req reviewRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	review, err := h.uc.UpdateReview(c.Request().Context(), caller, reviewID, &usecase.UpdateReviewInput{
		Text:   req.Text,
		Rating: req.Rating,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, review, "Review updated successfully")
}

// DeleteReview removes a review. Authors delete their own; admins any.
func (h *ReviewHandler) DeleteReview(c echo.Context) error {
	caller, ok := middleware.GetCaller(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authenticated caller")
	}

	reviewID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid review ID")
	}

	if err := h.uc.DeleteReview(c.Request().Context(), caller, reviewID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Review deleted successfully")
}

// ListAllReviews returns every review for the moderation view. Admin only.
func (h *ReviewHandler) ListAllReviews(c echo.Context) error {
	reviews, err := h.uc.ListAllReviews(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, reviews, "")
}

// ListMyReviews returns the caller's authored reviews.
func (h *ReviewHandler) ListMyReviews(c echo.Context) error {
	caller, ok := middleware.GetCaller(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authenticated caller")
	}

	reviews, err := h.uc.ListCallerReviews(c.Request().Context(), caller)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, reviews, "")
}
