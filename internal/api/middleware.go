package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shush-app/shush/internal/models"
)

// AuthRequired resolves the session cookie to a stored profile. The cycle
// log store remains the source of truth; the cookie only carries the id.
func (handler *Handler) AuthRequired(c *fiber.Ctx) error {
	raw := c.Cookies(authCookieName)
	if raw == "" {
		return unauthorized(c)
	}

	userID, err := handler.parseToken(raw)
	if err != nil {
		return unauthorized(c)
	}

	user, found, err := handler.logStore.FindByID(userID)
	if err != nil {
		return internalError(c, err)
	}
	if !found {
		return unauthorized(c)
	}

	c.Locals(contextUserKey, user)
	return c.Next()
}

func currentUser(c *fiber.Ctx) models.UserProfile {
	user, _ := c.Locals(contextUserKey).(models.UserProfile)
	return user
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
}

func internalError(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}
