package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/grn-engineering/smartvend/backend/internal/application"
	"github.com/grn-engineering/smartvend/backend/internal/domain"
	"github.com/grn-engineering/smartvend/backend/internal/pkg/logger"
	"github.com/grn-engineering/smartvend/backend/internal/rbac"
)

// AuthMiddleware gates routes on bearer tokens and section permissions
type AuthMiddleware struct {
	authService *application.AuthService
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(authService *application.AuthService) *AuthMiddleware {
	return &AuthMiddleware{authService: authService}
}

// Authenticate validates the bearer token and loads its claims into
// the request context. Unauthenticated requests are pointed at /login,
// matching the dashboard's navigation contract.
func (m *AuthMiddleware) Authenticate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error":    "missing authorization header",
				"redirect": rbac.LoginPath,
			})
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token == authHeader {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error":    "invalid authorization header format",
				"redirect": rbac.LoginPath,
			})
		}

		claims, err := m.authService.ValidateToken(token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error":    "invalid or expired token",
				"redirect": rbac.LoginPath,
			})
		}

		c.Locals("user_id", claims.UserID)
		c.Locals("user_email", claims.Email)
		c.Locals("user_role", claims.Role)
		c.Locals("user_country", claims.Country)

		return c.Next()
	}
}

// RequireSection evaluates the route guard for one dashboard section
// on every request; decisions are never cached across navigations.
func (m *AuthMiddleware) RequireSection(key rbac.SectionKey) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := SubjectFromContext(c)

		switch decision := rbac.Evaluate(user, key); decision {
		case rbac.DecisionAllow:
			return c.Next()
		case rbac.DecisionRedirectLogin:
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error":    "authentication required",
				"redirect": decision.RedirectPath(),
			})
		default:
			logger.Warn().
				Str("user_id", user.ID).
				Str("role", string(user.Role)).
				Str("section", string(key)).
				Msg("Section access denied")
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error":    "insufficient permissions",
				"redirect": decision.RedirectPath(),
			})
		}
	}
}

// SubjectFromContext rebuilds the session subject from token claims,
// or nil when the request is unauthenticated
func SubjectFromContext(c *fiber.Ctx) *domain.User {
	id, ok := c.Locals("user_id").(string)
	if !ok || id == "" {
		return nil
	}
	role, _ := c.Locals("user_role").(domain.Role)
	country, _ := c.Locals("user_country").(domain.Country)
	email, _ := c.Locals("user_email").(string)
	return &domain.User{ID: id, Email: email, Role: role, Country: country}
}
