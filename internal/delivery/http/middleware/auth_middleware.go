package middleware

import (
	"strings"

	deliverycontext "taskboard/internal/delivery/context"
	"taskboard/internal/delivery/http/response"
	"taskboard/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// KeyUserID is the echo.Context key under which the authenticated user's ID
// is stored for handlers.
const KeyUserID = "userID"

// AuthMiddleware provides middleware for bearer-token authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer token on the request. A missing,
// malformed, invalid, or expired token short-circuits with 401; the
// downstream handler never runs.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.Verify(tokenString)
		if err != nil {
			if errors.Is(err, service.ErrTokenExpired) {
				return response.Unauthorized(c, "Token expired")
			}

			return response.Unauthorized(c, "Invalid token")
		}

		// Expose the verified identity to handlers and to the service layer.
		c.Set(KeyUserID, claims.UserID)
		ctx := deliverycontext.WithUserID(c.Request().Context(), claims.UserID)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}
