package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/grn-engineering/smartvend/backend/internal/application"
	"github.com/grn-engineering/smartvend/backend/internal/settings"
)

// InventoryHandler handles HTTP requests for stock and catalogue views
type InventoryHandler struct {
	inventory *application.InventoryService
	settings  *settings.Store
}

// NewInventoryHandler creates a new inventory handler
func NewInventoryHandler(inventory *application.InventoryService, settings *settings.Store) *InventoryHandler {
	return &InventoryHandler{inventory: inventory, settings: settings}
}

// Stocks returns per-machine stock levels for the selected country
func (h *InventoryHandler) Stocks(c *fiber.Ctx) error {
	country, err := resolveCountry(c, h.settings)
	if err != nil {
		return badCountry(c, err)
	}

	stocks, err := h.inventory.MachineStocks(c.UserContext(), country)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"data": stocks})
}

// Restock returns the machines needing a restocking visit
func (h *InventoryHandler) Restock(c *fiber.Ctx) error {
	country, err := resolveCountry(c, h.settings)
	if err != nil {
		return badCountry(c, err)
	}

	list, err := h.inventory.RestockList(c.UserContext(), country)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"data": list})
}

// Catalogue returns the product list priced for the selected country
func (h *InventoryHandler) Catalogue(c *fiber.Ctx) error {
	country, err := resolveCountry(c, h.settings)
	if err != nil {
		return badCountry(c, err)
	}

	catalogue, err := h.inventory.Catalogue(c.UserContext(), country)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"data": catalogue})
}
