package handler

import (
	"errors"
	"log"
	"strings"

	"github.com/darshakkanani/Honeypot-Setup-sub001/internal/auth/dto"
	"github.com/darshakkanani/Honeypot-Setup-sub001/internal/auth/service"
	autherror "github.com/darshakkanani/Honeypot-Setup-sub001/internal/errors"
	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	userService *service.UserService
}

func NewAuthHandler(userService *service.UserService) *AuthHandler {
	return &AuthHandler{userService: userService}
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input dto.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Username and password required",
		})
	}

	if input.Username == "" || input.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Username and password required",
		})
	}

	resp, err := h.userService.Login(c.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, autherror.ErrInvalidCredentials):
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid credentials",
			})
		case errors.Is(err, autherror.ErrAccountLocked):
			return c.Status(fiber.StatusLocked).JSON(fiber.Map{
				"error": "Account temporarily locked",
			})
		default:
			log.Printf("login failed for %q: %v", input.Username, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Internal server error",
			})
		}
	}

	return c.Status(fiber.StatusOK).JSON(resp)
}

// Logout acknowledges the request; tokens are stateless and expire on
// their own, so the client simply discards its copy.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Logged out",
	})
}

// bearerToken extracts the token from an Authorization header. A missing
// or non-Bearer header yields ErrNoToken.
func bearerToken(authHeader string) (string, error) {
	token, ok := strings.CutPrefix(authHeader, "Bearer ")
	if !ok || token == "" {
		return "", autherror.ErrNoToken
	}

	return token, nil
}

func (h *AuthHandler) Verify(c *fiber.Ctx) error {
	token, err := bearerToken(c.Get("Authorization"))
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "No token provided",
		})
	}

	user, err := h.userService.VerifyToken(c.Context(), token)
	if err != nil {
		if errors.Is(err, autherror.ErrInvalidToken) || errors.Is(err, autherror.ErrUserNotFound) {
			// Same body for both so token holders cannot probe account state.
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid token",
			})
		}
		log.Printf("token verification failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"user": user})
}
