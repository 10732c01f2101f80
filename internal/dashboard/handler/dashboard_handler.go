package handler

import (
	"log"

	"github.com/darshakkanani/Honeypot-Setup-sub001/internal/dashboard/service"
	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	aggregator service.Aggregator
}

func NewDashboardHandler(aggregator service.Aggregator) *DashboardHandler {
	return &DashboardHandler{aggregator: aggregator}
}

func (h *DashboardHandler) Dashboard(c *fiber.Ctx) error {
	resp, err := h.aggregator.Snapshot(c.Context())
	if err != nil {
		log.Printf("dashboard snapshot failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	return c.Status(fiber.StatusOK).JSON(resp)
}
