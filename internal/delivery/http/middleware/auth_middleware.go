package middleware

import (
	"net/http"
	"strings"

	"harmony/internal/domain/service"
	"harmony/internal/usecase"

	"github.com/labstack/echo/v4"
)

// contextKeyCaller is the echo.Context key under which the authenticated
// caller is stored.
const contextKeyCaller = "caller"

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate is the core middleware function that validates the JWT access token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		caller, errMsg := m.callerFromHeader(c)
		if errMsg != "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": errMsg})
		}

		c.Set(contextKeyCaller, caller)

		return next(c)
	}
}

// OptionalAuthenticate resolves the caller when a bearer token is present
// but lets anonymous requests through. Invalid tokens are still rejected so
// clients learn their session expired instead of silently losing state.
func (m *AuthMiddleware) OptionalAuthenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if c.Request().Header.Get("Authorization") == "" {
			return next(c)
		}

		caller, errMsg := m.callerFromHeader(c)
		if errMsg != "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": errMsg})
		}

		c.Set(contextKeyCaller, caller)

		return next(c)
	}
}

// RequireRole is a middleware factory that checks if the user has a specific role.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRole string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			caller, ok := GetCaller(c)
			if !ok {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "Permission denied: role information missing"})
			}

			if caller.Role != requiredRole {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "Permission denied: require '" + requiredRole + "' role"})
			}

			return next(c)
		}
	}
}

// callerFromHeader validates the Authorization header and builds the caller.
// A non-empty string return is the client-facing failure reason.
func (m *AuthMiddleware) callerFromHeader(c echo.Context) (usecase.Caller, string) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return usecase.Caller{}, "Authorization header is missing"
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		return usecase.Caller{}, "Invalid token format, must be Bearer token"
	}

	claims, err := m.tokenSvc.ValidateAccessToken(tokenString)
	if err != nil {
		return usecase.Caller{}, "Invalid or expired token"
	}

	return usecase.Caller{
		UserID: claims.UserID,
		Email:  claims.Email,
		Role:   claims.Role,
	}, ""
}

// GetCaller returns the authenticated caller set by Authenticate, if any.
func GetCaller(c echo.Context) (usecase.Caller, bool) {
	caller, ok := c.Get(contextKeyCaller).(usecase.Caller)

	return caller, ok
}
