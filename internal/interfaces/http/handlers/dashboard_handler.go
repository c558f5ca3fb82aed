package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/grn-engineering/smartvend/backend/internal/application"
	"github.com/grn-engineering/smartvend/backend/internal/settings"
)

// DashboardHandler handles HTTP requests for the dashboard landing page
type DashboardHandler struct {
	fleet    *application.FleetService
	live     *application.LiveCounter
	settings *settings.Store
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(fleet *application.FleetService, live *application.LiveCounter, settings *settings.Store) *DashboardHandler {
	return &DashboardHandler{fleet: fleet, live: live, settings: settings}
}

// Summary returns the country-scoped fleet summary
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	country, err := resolveCountry(c, h.settings)
	if err != nil {
		return badCountry(c, err)
	}

	summary, err := h.fleet.Summary(c.UserContext(), country)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(fiber.Map{"data": summary})
}

// Machines returns the country-scoped machine list
func (h *DashboardHandler) Machines(c *fiber.Ctx) error {
	country, err := resolveCountry(c, h.settings)
	if err != nil {
		return badCountry(c, err)
	}

	machines, err := h.fleet.Machines(c.UserContext(), country)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(fiber.Map{"data": machines})
}

// Live returns the latest display-only connection counter reading
func (h *DashboardHandler) Live(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": h.live.Snapshot()})
}
