package handlers

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/grn-engineering/smartvend/backend/internal/application"
	"github.com/grn-engineering/smartvend/backend/internal/domain"
	"github.com/grn-engineering/smartvend/backend/internal/pkg/logger"
	"github.com/grn-engineering/smartvend/backend/internal/rbac"
	"github.com/grn-engineering/smartvend/backend/internal/session"
	"github.com/grn-engineering/smartvend/backend/internal/settings"
)

// AuthHandler handles HTTP requests for authentication and navigation
type AuthHandler struct {
	service  *application.AuthService
	settings *settings.Store
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(service *application.AuthService, settings *settings.Store) *AuthHandler {
	return &AuthHandler{service: service, settings: settings}
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login authenticates a user and issues a bearer token
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	result, err := h.service.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, session.ErrInvalidCredentials):
			logger.Warn().Str("email", req.Email).Msg("Login rejected")
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid email or password",
			})
		case errors.Is(err, session.ErrSuperseded):
			// a logout or newer login took over; this result is discarded
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "login superseded",
			})
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			return c.Status(fiber.StatusRequestTimeout).JSON(fiber.Map{
				"error": "login abandoned",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	logger.Info().
		Str("user_id", result.User.ID).
		Str("role", string(result.User.Role)).
		Str("country", string(result.User.Country)).
		Msg("User logged in")

	return c.JSON(fiber.Map{"data": result})
}

// Logout clears the session. Idempotent: logging out without an active
// session succeeds.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.service.Logout()
	logger.Info().Msg("User logged out")
	return c.JSON(fiber.Map{"message": "logged out"})
}

// Me returns the user behind the bearer token
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	token := strings.TrimPrefix(authHeader, "Bearer ")
	if token == "" || token == authHeader {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error":    "missing bearer token",
			"redirect": rbac.LoginPath,
		})
	}

	user, err := h.service.UserFromToken(c.UserContext(), token)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error":    "invalid or expired token",
			"redirect": rbac.LoginPath,
		})
	}

	return c.JSON(fiber.Map{"data": user})
}

// sectionItem is one navigation entry for the caller's role
type sectionItem struct {
	Path  string `json:"path"`
	Key   string `json:"key"`
	Label string `json:"label"`
}

// Sections returns the navigation menu for the caller's role, labeled
// in the active (or requested) language
func (h *AuthHandler) Sections(c *fiber.Ctx) error {
	role, ok := c.Locals("user_role").(domain.Role)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error":    "authentication required",
			"redirect": rbac.LoginPath,
		})
	}

	lang := h.settings.Language()
	if q := c.Query("lang"); q != "" {
		lang = rbac.Language(q)
	}

	sections := rbac.SectionsByRole(role)
	items := make([]sectionItem, 0, len(sections))
	for _, s := range sections {
		items = append(items, sectionItem{
			Path:  s.Path,
			Key:   string(s.RequiredPermission),
			Label: s.Label(lang),
		})
	}

	return c.JSON(fiber.Map{"data": items})
}
