package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/wellnestlab/wellnest/internal/models"
)

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func currentUser(c *fiber.Ctx) models.User {
	user, _ := c.Locals(contextUserKey).(models.User)
	return user
}
