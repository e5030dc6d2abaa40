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

// UpcomingHandler holds dependencies for the upcoming meal handlers.
type UpcomingHandler struct {
	uc     usecase.UpcomingUsecase
	logger *slog.Logger
}

// NewUpcomingHandler is the constructor for UpcomingHandler, injected by Fx.
func NewUpcomingHandler(uc usecase.UpcomingUsecase, logger *slog.Logger) *UpcomingHandler {
	return &UpcomingHandler{
		uc:     uc,
		logger: logger,
	}
}

type upcomingMealRequest struct {
	Title       string   `json:"title" validate:"required"`
	Category    string   `json:"category" validate:"required"`
	Price       float64  `json:"price" validate:"required,gt=0"`
	Description string   `json:"description"`
	Ingredients []string `json:"ingredients"`
	ImageURL    string   `json:"image" validate:"required"`
}

// ListUpcoming returns all staged meals, most liked first.
func (h *UpcomingHandler) ListUpcoming(c echo.Context) error {
	meals, err := h.uc.ListUpcoming(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, meals, "")
}

// AddUpcoming stages a new meal. Admin only.
func (h *UpcomingHandler) AddUpcoming(c echo.Context) error {
	caller, ok := middleware.GetCaller(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authenticated caller")
	}

	var req upcomingMealRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid upcoming meal input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	meal, err := h.uc.AddUpcoming(c.Request().Context(), caller, &usecase.AddUpcomingMealInput{
		Title:       req.Title,
		Category:    req.Category,
		Price:       req.Price,
		Description: req.Description,
		Ingredients: req.Ingredients,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, meal, "Upcoming meal staged successfully")
}

// LikeUpcoming registers the caller's interest in a staged meal.
func (h *UpcomingHandler) LikeUpcoming(c echo.Context) error {
	caller, ok := middleware.GetCaller(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authenticated caller")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid upcoming meal ID")
	}

	meal, err := h.uc.LikeUpcoming(c.Request().Context(), caller, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, meal, "Interest recorded")
}

// UnlikeUpcoming withdraws the caller's interest from a staged meal.
func (h *UpcomingHandler) UnlikeUpcoming(c echo.Context) error {
	caller, ok := middleware.GetCaller(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authenticated caller")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid upcoming meal ID")
	}

	meal, err := h.uc.UnlikeUpcoming(c.Request().Context(), caller, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, meal, "Interest withdrawn")
}

// PublishUpcoming moves a staged meal into the catalog. Admin only.
func (h *UpcomingHandler) PublishUpcoming(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid upcoming meal ID")
	}

	meal, err := h.uc.PublishUpcoming(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, meal, "Upcoming meal published")
}

// DeleteUpcoming discards a staged meal. Admin only.
func (h *UpcomingHandler) DeleteUpcoming(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid upcoming meal ID")
	}

	if err := h.uc.DeleteUpcoming(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Upcoming meal deleted")
}
