package middleware

import (
	"strings"

	"platter/internal/delivery/http/response"
	"platter/internal/domain/entity"
	"platter/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// callerContextKey is the echo context key carrying the authenticated identity.
const callerContextKey = "caller"

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate is the core middleware function that validates the JWT access
// token and attaches the resulting Caller to the echo context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateAccessToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}
		if !claims.Role.IsValid() {
			return response.Unauthorized(c, "INVALID_TOKEN", "Unknown role in token")
		}

		c.Set(callerContextKey, service.Caller{
			ID:   claims.UserID,
			Role: claims.Role,
		})

		return next(c)
	}
}

// RequireRoles is a middleware factory that gates a route group on role
// membership. It must be used AFTER the Authenticate middleware; finer
// decisions (ownership, blocklist) stay in the usecases.
func (m *AuthMiddleware) RequireRoles(allowed ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			caller, ok := CallerFromContext(c)
			if !ok {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: identity missing")
			}

			if !entity.Roles(allowed).Contains(caller.Role) {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: role not allowed")
			}

			return next(c)
		}
	}
}

// CallerFromContext extracts the authenticated Caller set by Authenticate.
func CallerFromContext(c echo.Context) (service.Caller, bool) {
	caller, ok := c.Get(callerContextKey).(service.Caller)

	return caller, ok
}
