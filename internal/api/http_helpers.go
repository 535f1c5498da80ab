package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

const dateLayout = "2006-01-02"

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

func parseDateField(raw string, location *time.Location) (time.Time, error) {
	return time.ParseInLocation(dateLayout, raw, location)
}
