package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/grn-engineering/smartvend/backend/internal/domain"
	"github.com/grn-engineering/smartvend/backend/internal/settings"
)

// resolveCountry picks the country scope for a data view: an explicit
// ?country= query wins, otherwise the process settings store applies.
func resolveCountry(c *fiber.Ctx, st *settings.Store) (domain.Country, error) {
	if q := c.Query("country"); q != "" {
		return domain.ParseCountry(q)
	}
	return st.SelectedCountry(), nil
}

func badCountry(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": err.Error(),
	})
}
