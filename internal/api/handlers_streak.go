package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) GetStreak(c *fiber.Ctx) error {
	user := currentUser(c)

	record, err := handler.streakService.GetStreak(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load streak")
	}
	return c.JSON(fiber.Map{"streak": record})
}
