package api

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/shush-app/shush/internal/store"
)

type credentialsInput struct {
	Username string `json:"username"`
}

// Register creates an account from a username and opens its session.
func (handler *Handler) Register(c *fiber.Ctx) error {
	var input credentialsInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid request body")
	}
	if strings.TrimSpace(input.Username) == "" {
		return badRequest(c, "username is required")
	}

	user, err := handler.logStore.CreateAccount(input.Username)
	if errors.Is(err, store.ErrDuplicateUsername) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Username already taken."})
	}
	if err != nil {
		return internalError(c, err)
	}

	if err := handler.setAuthCookie(c, &user); err != nil {
		return internalError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// Login authenticates by username only; there are no credentials by design.
func (handler *Handler) Login(c *fiber.Ctx) error {
	var input credentialsInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid request body")
	}
	if strings.TrimSpace(input.Username) == "" {
		return badRequest(c, "username is required")
	}

	user, err := handler.logStore.Authenticate(input.Username)
	if errors.Is(err, store.ErrUserNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found. Please sign up first."})
	}
	if err != nil {
		return internalError(c, err)
	}

	if err := handler.setAuthCookie(c, &user); err != nil {
		return internalError(c, err)
	}
	return c.JSON(user)
}

// Logout clears the session pointer and the cookie. Profiles are kept.
func (handler *Handler) Logout(c *fiber.Ctx) error {
	if err := handler.logStore.EndSession(); err != nil {
		return internalError(c, err)
	}
	handler.clearAuthCookie(c)
	return c.JSON(fiber.Map{"ok": true})
}

// Me returns the profile behind the current session.
func (handler *Handler) Me(c *fiber.Ctx) error {
	return c.JSON(currentUser(c))
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": message})
}
