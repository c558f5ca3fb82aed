package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/grn-engineering/smartvend/backend/internal/application"
	"github.com/grn-engineering/smartvend/backend/internal/domain"
	"github.com/grn-engineering/smartvend/backend/internal/settings"
)

// MaintenanceHandler handles HTTP requests for the maintenance queue
type MaintenanceHandler struct {
	maintenance *application.MaintenanceService
	settings    *settings.Store
}

// NewMaintenanceHandler creates a new maintenance handler
func NewMaintenanceHandler(maintenance *application.MaintenanceService, settings *settings.Store) *MaintenanceHandler {
	return &MaintenanceHandler{maintenance: maintenance, settings: settings}
}

// List returns the alert queue for the selected country's machines
func (h *MaintenanceHandler) List(c *fiber.Ctx) error {
	country, err := resolveCountry(c, h.settings)
	if err != nil {
		return badCountry(c, err)
	}

	alerts, err := h.maintenance.Alerts(c.UserContext(), country)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"data": alerts})
}

// Summary returns per-priority and per-status counts
func (h *MaintenanceHandler) Summary(c *fiber.Ctx) error {
	country, err := resolveCountry(c, h.settings)
	if err != nil {
		return badCountry(c, err)
	}

	summary, err := h.maintenance.Summary(c.UserContext(), country)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"data": summary})
}

// UpdateStatusRequest represents an alert lifecycle change
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateStatus moves an alert through its lifecycle
func (h *MaintenanceHandler) UpdateStatus(c *fiber.Ctx) error {
	var req UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	status := domain.AlertStatus(req.Status)
	switch status {
	case domain.AlertStatusPending, domain.AlertStatusInProgress, domain.AlertStatusResolved:
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "unknown alert status"})
	}

	if err := h.maintenance.UpdateStatus(c.UserContext(), c.Params("id"), status); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "alert updated"})
}
