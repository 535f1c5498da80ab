package api

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/wellnestlab/wellnest/internal/models"
)

var errNoAuthToken = errors.New("no auth token")

func (handler *Handler) buildToken(user *models.User, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	now := handler.now()

	claims := authClaims{
		UserID: user.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(user.ID), 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(handler.secretKey)
}

func (handler *Handler) setAuthCookie(c *fiber.Ctx, user *models.User) error {
	token, err := handler.buildToken(user, defaultTokenTTL)
	if err != nil {
		return err
	}

	c.Cookie(&fiber.Cookie{
		Name:     authCookieName,
		Value:    token,
		Path:     "/",
		HTTPOnly: true,
		Secure:   handler.cookieSecure,
		SameSite: "Lax",
		Expires:  handler.now().Add(defaultTokenTTL),
	})
	return nil
}

func (handler *Handler) clearAuthCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     authCookieName,
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		Secure:   handler.cookieSecure,
		SameSite: "Lax",
		Expires:  handler.now().Add(-1 * time.Hour),
	})
}

// authenticateRequest accepts the session cookie or a Bearer header.
func (handler *Handler) authenticateRequest(c *fiber.Ctx) (models.User, error) {
	raw := c.Cookies(authCookieName)
	if raw == "" {
		authorization := c.Get("Authorization")
		if strings.HasPrefix(authorization, "Bearer ") {
			raw = strings.TrimPrefix(authorization, "Bearer ")
		}
	}
	if strings.TrimSpace(raw) == "" {
		return models.User{}, errNoAuthToken
	}

	claims := authClaims{}
	token, err := jwt.ParseWithClaims(raw, &claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return handler.secretKey, nil
	}, jwt.WithTimeFunc(handler.now))
	if err != nil || !token.Valid {
		return models.User{}, errNoAuthToken
	}

	user, found, err := handler.authService.FindByID(claims.UserID)
	if err != nil || !found {
		return models.User{}, errNoAuthToken
	}
	return user, nil
}
