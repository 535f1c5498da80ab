package api

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/wellnestlab/wellnest/internal/services"
)

type logCyclePayload struct {
	PeriodStartDate string   `json:"period_start_date"`
	PeriodEndDate   string   `json:"period_end_date"`
	FlowIntensity   string   `json:"flow_intensity"`
	FluidType       string   `json:"fluid_type"`
	Notes           string   `json:"notes"`
	Symptoms        []string `json:"symptoms"`
}

type updateCyclePayload struct {
	PeriodEndDate *string  `json:"period_end_date"`
	FlowIntensity *string  `json:"flow_intensity"`
	FluidType     *string  `json:"fluid_type"`
	Notes         *string  `json:"notes"`
	Symptoms      []string `json:"symptoms"`
}

func (handler *Handler) ListCycles(c *fiber.Ctx) error {
	user := currentUser(c)

	entries, err := handler.cycleService.ListCycles(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load cycles")
	}
	return c.JSON(fiber.Map{"cycles": entries})
}

// LogCycle creates the entry, then refreshes the stored prediction. The
// refresh runs outside the entry's transaction: its failure is logged and
// the created entry is still returned.
func (handler *Handler) LogCycle(c *fiber.Ctx) error {
	user := currentUser(c)

	payload := logCyclePayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if payload.PeriodStartDate == "" {
		return apiError(c, fiber.StatusBadRequest, "period_start_date is required")
	}

	startDate, err := parseDateField(payload.PeriodStartDate, handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "period_start_date must be YYYY-MM-DD")
	}

	input := services.CycleEntryInput{
		PeriodStartDate: startDate,
		FlowIntensity:   payload.FlowIntensity,
		FluidType:       payload.FluidType,
		Notes:           payload.Notes,
		Symptoms:        payload.Symptoms,
	}
	if payload.PeriodEndDate != "" {
		endDate, err := parseDateField(payload.PeriodEndDate, handler.location)
		if err != nil {
			return apiError(c, fiber.StatusBadRequest, "period_end_date must be YYYY-MM-DD")
		}
		input.PeriodEndDate = &endDate
	}

	entry, err := handler.cycleService.LogCycle(user.ID, input, handler.location)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCycleStartDateRequired):
			return apiError(c, fiber.StatusBadRequest, "period_start_date is required")
		case errors.Is(err, services.ErrCycleEndBeforeStart):
			return apiError(c, fiber.StatusBadRequest, "period_end_date is before period_start_date")
		default:
			return apiError(c, fiber.StatusInternalServerError, "failed to log cycle")
		}
	}

	if _, err := handler.predictionService.RefreshForUser(user.ID, handler.location); err != nil {
		handler.logger.Warn("prediction refresh failed after cycle log",
			zap.Uint("user_id", user.ID),
			zap.Error(err),
		)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"cycle": entry})
}

// UpdateCycle edits descriptive fields or the end date. It never re-runs
// cycle-length inference.
func (handler *Handler) UpdateCycle(c *fiber.Ctx) error {
	user := currentUser(c)

	cycleID, err := parseCycleID(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid cycle id")
	}

	payload := updateCyclePayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	patch := services.CycleEntryPatch{
		FlowIntensity: payload.FlowIntensity,
		FluidType:     payload.FluidType,
		Notes:         payload.Notes,
	}
	if payload.PeriodEndDate != nil {
		patch.PeriodEndDateSet = true
		if *payload.PeriodEndDate != "" {
			endDate, err := parseDateField(*payload.PeriodEndDate, handler.location)
			if err != nil {
				return apiError(c, fiber.StatusBadRequest, "period_end_date must be YYYY-MM-DD")
			}
			patch.PeriodEndDate = &endDate
		}
	}
	if payload.Symptoms != nil {
		patch.SymptomsSet = true
		patch.Symptoms = payload.Symptoms
	}

	entry, err := handler.cycleService.UpdateCycle(user.ID, cycleID, patch, handler.location)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCycleEntryNotFound):
			return apiError(c, fiber.StatusNotFound, "cycle not found")
		case errors.Is(err, services.ErrCycleEndBeforeStart):
			return apiError(c, fiber.StatusBadRequest, "period_end_date is before period_start_date")
		default:
			return apiError(c, fiber.StatusInternalServerError, "failed to update cycle")
		}
	}
	return c.JSON(fiber.Map{"cycle": entry})
}

func (handler *Handler) DeleteCycle(c *fiber.Ctx) error {
	user := currentUser(c)

	cycleID, err := parseCycleID(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid cycle id")
	}

	if err := handler.cycleService.DeleteCycle(user.ID, cycleID); err != nil {
		if errors.Is(err, services.ErrCycleEntryNotFound) {
			return apiError(c, fiber.StatusNotFound, "cycle not found")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to delete cycle")
	}
	return c.JSON(fiber.Map{"ok": true})
}

func parseCycleID(c *fiber.Ctx) (uint, error) {
	raw := c.Params("id")
	parsed, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || parsed == 0 {
		return 0, errors.New("invalid cycle id")
	}
	return uint(parsed), nil
}
