package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/wellnestlab/wellnest/internal/services"
)

type predictPayload struct {
	LastPeriodDate string `json:"last_period_date"`
}

func (handler *Handler) GetStatistics(c *fiber.Ctx) error {
	user := currentUser(c)

	entries, err := handler.cycleService.ListCycles(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load cycles")
	}
	return c.JSON(fiber.Map{"statistics": services.BuildCycleStatistics(entries).WithDefaults()})
}

func (handler *Handler) GetDashboard(c *fiber.Ctx) error {
	user := currentUser(c)

	entries, err := handler.cycleService.ListCycles(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load cycles")
	}
	dashboard := services.BuildDashboard(entries, handler.now(), handler.location)
	return c.JSON(fiber.Map{"dashboard": dashboard})
}

// PredictNextPeriod serves the explicit prediction request for an arbitrary
// last-period date with no backing entry.
func (handler *Handler) PredictNextPeriod(c *fiber.Ctx) error {
	user := currentUser(c)

	payload := predictPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if payload.LastPeriodDate == "" {
		return apiError(c, fiber.StatusBadRequest, "last_period_date is required")
	}

	lastPeriodDate, err := parseDateField(payload.LastPeriodDate, handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "last_period_date must be YYYY-MM-DD")
	}

	prediction, err := handler.predictionService.PredictFromDate(user.ID, lastPeriodDate, handler.location)
	if err != nil {
		if errors.Is(err, services.ErrCycleStartDateRequired) {
			return apiError(c, fiber.StatusBadRequest, "last_period_date is required")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to build prediction")
	}
	return c.JSON(fiber.Map{"prediction": prediction})
}
