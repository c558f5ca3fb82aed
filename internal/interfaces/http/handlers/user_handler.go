package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/grn-engineering/smartvend/backend/internal/application"
	"github.com/grn-engineering/smartvend/backend/internal/domain"
)

// UserHandler handles HTTP requests for user management
type UserHandler struct {
	users *application.UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(users *application.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// List returns users, optionally filtered by ?country=
func (h *UserHandler) List(c *fiber.Ctx) error {
	var scope *domain.Country
	if q := c.Query("country"); q != "" {
		country, err := domain.ParseCountry(q)
		if err != nil {
			return badCountry(c, err)
		}
		scope = &country
	}

	users, err := h.users.List(c.UserContext(), scope)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"data": users})
}

// CreateUserRequest represents a new user registration
type CreateUserRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Role    string `json:"role"`
	Country string `json:"country"`
}

// Create registers a new user
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var req CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	user, err := h.users.Create(c.UserContext(), req.Name, req.Email, req.Role, req.Country)
	if err != nil {
		if errors.Is(err, application.ErrValidation) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": user})
}

// UpdateUserRequest represents a role or status change
type UpdateUserRequest struct {
	Role   *string `json:"role,omitempty"`
	Status *string `json:"status,omitempty"`
}

// Update changes a user's role and/or status
func (h *UserHandler) Update(c *fiber.Ctx) error {
	var req UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	id := c.Params("id")
	var user *domain.User
	var err error

	if req.Role != nil {
		user, err = h.users.SetRole(c.UserContext(), id, *req.Role)
		if err != nil {
			return userUpdateError(c, err)
		}
	}
	if req.Status != nil {
		user, err = h.users.SetStatus(c.UserContext(), id, domain.UserStatus(*req.Status))
		if err != nil {
			return userUpdateError(c, err)
		}
	}
	if user == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "nothing to update"})
	}
	return c.JSON(fiber.Map{"data": user})
}

// Delete removes a user
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	if err := h.users.Delete(c.UserContext(), c.Params("id")); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "user deleted"})
}

func userUpdateError(c *fiber.Ctx, err error) error {
	if errors.Is(err, application.ErrValidation) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
}
