package middleware

import (
	"context"
	"strings"

	"github.com/labstack/echo/v4"

	"tradbazar/pkg/errors"
	"tradbazar/pkg/response"
)

// TokenVerifier turns a bearer credential into a verified email claim.
type TokenVerifier interface {
	VerifyToken(ctx context.Context, token string) (string, error)
}

// AuthMiddleware resolves the request principal. A missing or malformed
// credential is 401; a credential the verifier rejects is 403.
type AuthMiddleware struct {
	verifier TokenVerifier
}

func NewAuthMiddleware(verifier TokenVerifier) *AuthMiddleware {
	return &AuthMiddleware{
		verifier: verifier,
	}
}

func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Error(c, errors.Unauthorized("Authorization header is required", nil))
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return response.Error(c, errors.Unauthorized("Invalid authorization format", nil))
		}

		email, err := m.verifier.VerifyToken(c.Request().Context(), parts[1])
		if err != nil {
			return response.Error(c, errors.Forbidden("Invalid or expired token", err))
		}
		if email == "" {
			return response.Error(c, errors.Forbidden("Token carries no email claim", nil))
		}

		c.Set("email", email)
		return next(c)
	}
}

// Email returns the principal email resolved by Authenticate.
func Email(c echo.Context) string {
	email, _ := c.Get("email").(string)
	return email
}
