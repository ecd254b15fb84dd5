package middleware

import (
	"github.com/labstack/echo/v4"

	"tradbazar/internal/domain/entity"
	"tradbazar/internal/domain/repository"
	"tradbazar/pkg/errors"
	"tradbazar/pkg/response"
)

// RoleMiddleware is the role gate: it checks the principal's stored role
// against a required role, fresh on every request so a downgrade takes effect
// immediately.
type RoleMiddleware struct {
	userRepo repository.UserRepository
}

func NewRoleMiddleware(userRepo repository.UserRepository) *RoleMiddleware {
	return &RoleMiddleware{
		userRepo: userRepo,
	}
}

func (m *RoleMiddleware) RequireRole(role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			email := Email(c)
			if email == "" {
				return response.Error(c, errors.Unauthorized("Authentication required", nil))
			}

			user, err := m.userRepo.GetByEmail(c.Request().Context(), email)
			if err != nil {
				if errors.Is(err, "NOT_FOUND") {
					return response.Error(c, errors.Forbidden("No account found for this credential", err))
				}
				return response.Error(c, errors.Internal("Failed to verify role", err))
			}

			if user.Role != role {
				return response.Error(c, errors.Forbidden(role+" privileges required", nil))
			}

			c.Set("role", user.Role)
			return next(c)
		}
	}
}

func (m *RoleMiddleware) AdminOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return m.RequireRole(entity.RoleAdmin)(next)
}

func (m *RoleMiddleware) SellerOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return m.RequireRole(entity.RoleSeller)(next)
}
