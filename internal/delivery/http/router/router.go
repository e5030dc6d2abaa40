// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"harmony/internal/delivery/http/middleware"
	"harmony/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	UserHandler     *handler.UserHandler
	AdminHandler    *handler.AdminHandler
	MealHandler     *handler.MealHandler
	ReviewHandler   *handler.ReviewHandler
	RequestHandler  *handler.RequestHandler
	UpcomingHandler *handler.UpcomingHandler
	PaymentHandler  *handler.PaymentHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	auth := r.params.AuthMiddleware

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.params.AuthHandler.Login)
		authGroup.POST("/refresh", r.params.AuthHandler.RefreshToken)
		authGroup.POST("/logout", r.params.AuthHandler.Logout)
	}

	// Catalog routes. Meal detail accepts an optional bearer token so the
	// response can carry the caller's like state.
	mealGroup := e.Group("/meals")
	{
		mealGroup.GET("", r.params.MealHandler.ListMeals)
		mealGroup.GET("/top", r.params.MealHandler.TopMeals)
		mealGroup.GET("/:id", r.params.MealHandler.GetMeal, auth.OptionalAuthenticate)

		mealGroup.POST("/:id/like", r.params.ReviewHandler.LikeMeal, auth.Authenticate)
		mealGroup.POST("/:id/reviews", r.params.ReviewHandler.AddReview, auth.Authenticate)
		mealGroup.POST("/:id/request", r.params.RequestHandler.CreateRequest, auth.Authenticate)
	}

	// Review author routes
	reviewGroup := e.Group("/reviews", auth.Authenticate)
	{
		reviewGroup.PUT("/:id", r.params.ReviewHandler.UpdateReview)
		reviewGroup.DELETE("/:id", r.params.ReviewHandler.DeleteReview)
	}

	// Request owner routes
	requestGroup := e.Group("/requests", auth.Authenticate)
	{
		requestGroup.DELETE("/:id", r.params.RequestHandler.CancelRequest)
		requestGroup.GET("/:id/ticket", r.params.RequestHandler.PickupTicket)
	}

	// Upcoming meal promotion
	upcomingGroup := e.Group("/upcoming")
	{
		upcomingGroup.GET("", r.params.UpcomingHandler.ListUpcoming)
		upcomingGroup.POST("/:id/like", r.params.UpcomingHandler.LikeUpcoming, auth.Authenticate)
		upcomingGroup.DELETE("/:id/like", r.params.UpcomingHandler.UnlikeUpcoming, auth.Authenticate)
	}

	// Membership payments
	paymentGroup := e.Group("/payments", auth.Authenticate)
	{
		paymentGroup.POST("/intent", r.params.PaymentHandler.CreateIntent)
		paymentGroup.POST("", r.params.PaymentHandler.RecordPayment)
	}

	// Member routes that require authentication
	userGroup := e.Group("/user", auth.Authenticate)
	{
		userGroup.GET("/profile", r.params.UserHandler.GetProfile)
		userGroup.GET("/admin", r.params.UserHandler.IsAdmin)
		userGroup.GET("/requests", r.params.RequestHandler.ListMyRequests)
		userGroup.GET("/reviews", r.params.ReviewHandler.ListMyReviews)
		userGroup.GET("/payments", r.params.PaymentHandler.History)
	}

	// Staff routes that require authentication and the "admin" role
	adminGroup := e.Group("/admin", auth.Authenticate, auth.RequireRole("admin"))
	{
		adminGroup.POST("/meals", r.params.MealHandler.AddMeal)
		adminGroup.GET("/meals", r.params.MealHandler.MyMeals)
		adminGroup.PUT("/meals/:id", r.params.MealHandler.UpdateMeal)
		adminGroup.DELETE("/meals/:id", r.params.MealHandler.DeleteMeal)
		adminGroup.POST("/images", r.params.MealHandler.UploadImage)

		adminGroup.GET("/reviews", r.params.ReviewHandler.ListAllReviews)

		adminGroup.GET("/requests", r.params.RequestHandler.ListServeQueue)
		adminGroup.PATCH("/requests/:id/deliver", r.params.RequestHandler.MarkDelivered)

		adminGroup.POST("/upcoming", r.params.UpcomingHandler.AddUpcoming)
		adminGroup.POST("/upcoming/:id/publish", r.params.UpcomingHandler.PublishUpcoming)
		adminGroup.DELETE("/upcoming/:id", r.params.UpcomingHandler.DeleteUpcoming)

		adminGroup.GET("/users", r.params.AdminHandler.ListUsers)
		adminGroup.PATCH("/users/:id/promote", r.params.AdminHandler.PromoteUser)
		adminGroup.DELETE("/users/:id", r.params.AdminHandler.DeleteUser)
		adminGroup.GET("/stats", r.params.AdminHandler.Stats)
	}
}
