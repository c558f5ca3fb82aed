package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/grn-engineering/smartvend/backend/internal/application"
	"github.com/grn-engineering/smartvend/backend/internal/settings"
)

// AnalyticsHandler handles HTTP requests for the analytics section
type AnalyticsHandler struct {
	analytics *application.AnalyticsService
	settings  *settings.Store
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(analytics *application.AnalyticsService, settings *settings.Store) *AnalyticsHandler {
	return &AnalyticsHandler{analytics: analytics, settings: settings}
}

// Revenue returns the daily revenue series for the selected country
func (h *AnalyticsHandler) Revenue(c *fiber.Ctx) error {
	country, err := resolveCountry(c, h.settings)
	if err != nil {
		return badCountry(c, err)
	}

	series, err := h.analytics.RevenueSeries(c.UserContext(), country)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"data": series})
}

// Payments returns the payment method split for the selected country
func (h *AnalyticsHandler) Payments(c *fiber.Ctx) error {
	country, err := resolveCountry(c, h.settings)
	if err != nil {
		return badCountry(c, err)
	}

	split, err := h.analytics.PaymentMethods(c.UserContext(), country)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"data": split})
}

// Transactions returns the recent vend feed for the selected country
func (h *AnalyticsHandler) Transactions(c *fiber.Ctx) error {
	country, err := resolveCountry(c, h.settings)
	if err != nil {
		return badCountry(c, err)
	}

	limit := 20
	if q := c.Query("limit"); q != "" {
		if n, err := strconv.Atoi(q); err == nil && n > 0 {
			limit = n
		}
	}

	txs, err := h.analytics.RecentTransactions(c.UserContext(), country, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"data": txs})
}

// TopMachines returns the selected country's best machines by revenue
func (h *AnalyticsHandler) TopMachines(c *fiber.Ctx) error {
	country, err := resolveCountry(c, h.settings)
	if err != nil {
		return badCountry(c, err)
	}

	limit := 5
	if q := c.Query("limit"); q != "" {
		if n, err := strconv.Atoi(q); err == nil && n > 0 {
			limit = n
		}
	}

	top, err := h.analytics.TopMachines(c.UserContext(), country, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"data": top})
}
