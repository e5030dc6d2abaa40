package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"harmony/internal/delivery/http/middleware"
	"harmony/internal/delivery/http/response"
	"harmony/internal/domain/entity"
	"harmony/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// MealHandler holds dependencies for the catalog handlers.
type MealHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewMealHandler is the constructor for MealHandler, injected by Fx.
func NewMealHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *MealHandler {
	return &MealHandler{
		uc:     uc,
		logger: logger,
	}
}

type mealRequest struct {
	Title       string   `json:"title" validate:"required"`
	Category    string   `json:"category" validate:"required"`
	Price       float64  `json:"price" validate:"required,gt=0"`
	Description string   `json:"description"`
	Ingredients []string `json:"ingredients"`
	ImageURL    string   `json:"image" validate:"required"`
}

// ListMeals returns one filtered catalog page.
func (h *MealHandler) ListMeals(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	minPrice, _ := strconv.ParseFloat(c.QueryParam("minPrice"), 64)
	maxPrice, _ := strconv.ParseFloat(c.QueryParam("maxPrice"), 64)

	filter := &entity.MealFilter{
		Search:   c.QueryParam("search"),
		Category: c.QueryParam("category"),
		MinPrice: minPrice,
		MaxPrice: maxPrice,
		Page:     page,
		Limit:    limit,
	}

	output, err := h.uc.ListMeals(c.Request().Context(), filter)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}

// GetMeal returns a meal with its reviews and the caller's like state.
func (h *MealHandler) GetMeal(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid meal ID")
	}

	var caller *usecase.Caller
	if authCaller, ok := middleware.GetCaller(c); ok {
		caller = &authCaller
	}

	output, err := h.uc.GetMealDetail(c.Request().Context(), id, caller)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}

// TopMeals returns meals ordered by rating then likes.
func (h *MealHandler) TopMeals(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	output, err := h.uc.TopMealsByCategory(c.Request().Context(), c.QueryParam("category"), limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}

// AddMeal publishes a new meal. Admin only.
func (h *MealHandler) AddMeal(c echo.Context) error {
	caller, ok := middleware.GetCaller(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authenticated caller")
	}

	var req mealRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid meal input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	meal, err := h.uc.AddMeal(c.Request().Context(), caller, &usecase.AddMealInput{
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

	return response.Success(c, http.StatusCreated, meal, "Meal published successfully")
}

// UpdateMeal rewrites a meal's descriptive fields. Admin only.
func (h *MealHandler) UpdateMeal(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid meal ID")
	}

	var req mealRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid meal input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	meal, err := h.uc.UpdateMeal(c.Request().Context(), id, &usecase.UpdateMealInput{
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

	return response.Success(c, http.StatusOK, meal, "Meal updated successfully")
}

// DeleteMeal removes a meal from the catalog. Admin only.
func (h *MealHandler) DeleteMeal(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid meal ID")
	}

	if err := h.uc.DeleteMeal(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Meal deleted successfully")
}

// MyMeals returns the meals the calling admin has distributed.
func (h *MealHandler) MyMeals(c echo.Context) error {
	caller, ok := middleware.GetCaller(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authenticated caller")
	}

	meals, err := h.uc.MealsByDistributor(c.Request().Context(), caller.Email)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, meals, "")
}

// UploadImage stores a meal image and returns its public URL. Admin only.
func (h *MealHandler) UploadImage(c echo.Context) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Image file is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open uploaded image")
	}
	defer file.Close()

	url, err := h.uc.UploadImage(c.Request().Context(), &usecase.UploadImageInput{
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Content:     file,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"url": url}, "Image uploaded successfully")
}
