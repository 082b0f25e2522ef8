package middleware

import (
	"strings"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware validates backend-issued access tokens on protected routes.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer token and stores the identity on the
// request context. Requests without a valid session are rejected.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := m.resolveUser(c)
		if !ok {
			return response.Unauthorized(c, "AUTH_REQUIRED", "Будь ласка, авторизуйтеся перед оформленням замовлення")
		}

		ctx := deliverycontext.WithAuthUser(c.Request().Context(), user)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// OptionalAuthenticate resolves the identity when a valid token is present
// but lets anonymous requests through. Cart routes use it so guests can
// shop before logging in.
func (m *AuthMiddleware) OptionalAuthenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if user, ok := m.resolveUser(c); ok {
			ctx := deliverycontext.WithAuthUser(c.Request().Context(), user)
			c.SetRequest(c.Request().WithContext(ctx))
		}

		return next(c)
	}
}

func (m *AuthMiddleware) resolveUser(c echo.Context) (user *entity.AuthUser, ok bool) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, false
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		return nil, false
	}

	parsed, err := m.tokenSvc.ParseAccessToken(tokenString)
	if err != nil {
		return nil, false
	}

	return parsed, true
}
