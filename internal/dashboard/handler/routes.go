package handler

import (
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app *fiber.App, h *DashboardHandler) {
	app.Get("/dashboard", h.Dashboard)
}
