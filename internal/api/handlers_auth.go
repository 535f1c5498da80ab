package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/wellnestlab/wellnest/internal/models"
	"github.com/wellnestlab/wellnest/internal/services"
)

type credentialsPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (handler *Handler) Register(c *fiber.Ctx) error {
	payload := credentialsPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	user, err := handler.authService.Register(payload.Email, payload.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAuthEmailInvalid):
			return apiError(c, fiber.StatusBadRequest, "a valid email is required")
		case errors.Is(err, services.ErrAuthPasswordTooShort):
			return apiError(c, fiber.StatusBadRequest, "password must be at least 8 characters")
		case errors.Is(err, services.ErrAuthEmailTaken):
			return apiError(c, fiber.StatusConflict, "email already registered")
		default:
			return apiError(c, fiber.StatusInternalServerError, "registration failed")
		}
	}

	if err := handler.setAuthCookie(c, &user); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "registration failed")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"user": user})
}

// Login verifies credentials and advances the sign-in streak. The streak
// update is best-effort: its failure never turns a valid login into an
// error response.
func (handler *Handler) Login(c *fiber.Ctx) error {
	payload := credentialsPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	user, err := handler.authService.Login(payload.Email, payload.Password)
	if err != nil {
		if errors.Is(err, services.ErrAuthInvalidCredentials) {
			return apiError(c, fiber.StatusUnauthorized, "invalid email or password")
		}
		return apiError(c, fiber.StatusInternalServerError, "login failed")
	}

	if err := handler.setAuthCookie(c, &user); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "login failed")
	}

	var streak *models.StreakRecord
	record, err := handler.streakService.RecordSignIn(user.ID, handler.now(), handler.location)
	if err != nil {
		handler.logger.Warn("sign-in streak update failed",
			zap.Uint("user_id", user.ID),
			zap.Error(err),
		)
	} else {
		streak = &record
	}

	response := fiber.Map{"user": user}
	if streak != nil {
		response["streak"] = streak
	}
	return c.JSON(response)
}

func (handler *Handler) Logout(c *fiber.Ctx) error {
	handler.clearAuthCookie(c)
	return c.JSON(fiber.Map{"ok": true})
}
