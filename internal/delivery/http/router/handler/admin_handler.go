package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"harmony/internal/delivery/http/middleware"
	"harmony/internal/delivery/http/response"
	"harmony/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AdminHandler holds dependencies for the staff user-management and
// dashboard handlers.
type AdminHandler struct {
	userUC  usecase.UserUsecase
	statsUC usecase.StatsUsecase
	logger  *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(userUC usecase.UserUsecase, statsUC usecase.StatsUsecase, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		userUC:  userUC,
		statsUC: statsUC,
		logger:  logger,
	}
}

// ListUsers returns one page of the user directory.
func (h *AdminHandler) ListUsers(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	output, err := h.userUC.ListUsers(c.Request().Context(), page, limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}

// PromoteUser grants the admin role to a user.
func (h *AdminHandler) PromoteUser(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	if err := h.userUC.PromoteToAdmin(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "User promoted successfully")
}

// DeleteUser removes a user account.
func (h *AdminHandler) DeleteUser(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	if err := h.userUC.DeleteUser(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "User deleted successfully")
}

// Stats returns the dashboard totals for the calling admin.
func (h *AdminHandler) Stats(c echo.Context) error {
	caller, ok := middleware.GetCaller(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authenticated caller")
	}

	output, err := h.statsUC.AdminStats(c.Request().Context(), caller.Email)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}
