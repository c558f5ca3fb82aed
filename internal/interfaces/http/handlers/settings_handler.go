package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/grn-engineering/smartvend/backend/internal/domain"
	"github.com/grn-engineering/smartvend/backend/internal/rbac"
	"github.com/grn-engineering/smartvend/backend/internal/settings"
)

// SettingsHandler handles HTTP requests for the process display context
type SettingsHandler struct {
	store *settings.Store
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(store *settings.Store) *SettingsHandler {
	return &SettingsHandler{store: store}
}

// SettingsResponse represents the current display context
type SettingsResponse struct {
	Language        rbac.Language  `json:"language"`
	Theme           settings.Theme `json:"theme"`
	SelectedCountry domain.Country `json:"selected_country"`
}

// Get returns current settings
func (h *SettingsHandler) Get(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": SettingsResponse{
		Language:        h.store.Language(),
		Theme:           h.store.Theme(),
		SelectedCountry: h.store.SelectedCountry(),
	}})
}

// UpdateSettingsRequest represents a settings change; omitted fields
// are left untouched
type UpdateSettingsRequest struct {
	Language        *string `json:"language,omitempty"`
	Theme           *string `json:"theme,omitempty"`
	SelectedCountry *string `json:"selected_country,omitempty"`
}

// Update applies a settings change
func (h *SettingsHandler) Update(c *fiber.Ctx) error {
	var req UpdateSettingsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	if req.Language != nil {
		if err := h.store.SetLanguage(rbac.Language(*req.Language)); err != nil {
			return settingsError(c, err)
		}
	}
	if req.Theme != nil {
		if err := h.store.SetTheme(settings.Theme(*req.Theme)); err != nil {
			return settingsError(c, err)
		}
	}
	if req.SelectedCountry != nil {
		if err := h.store.SetSelectedCountry(domain.Country(*req.SelectedCountry)); err != nil {
			return settingsError(c, err)
		}
	}

	return h.Get(c)
}

// ToggleLanguage flips between English and Japanese
func (h *SettingsHandler) ToggleLanguage(c *fiber.Ctx) error {
	h.store.ToggleLanguage()
	return h.Get(c)
}

// ToggleTheme flips between light and dark
func (h *SettingsHandler) ToggleTheme(c *fiber.Ctx) error {
	h.store.ToggleTheme()
	return h.Get(c)
}

func settingsError(c *fiber.Ctx, err error) error {
	if errors.Is(err, settings.ErrInvalidArgument) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}
