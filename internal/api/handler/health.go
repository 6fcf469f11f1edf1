package handler

import (
	"github.com/gofiber/fiber/v2"
)

// Version is reported by the health endpoint.
const Version = "0.1.0"

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}

func (h *HealthHandler) Health(c *fiber.Ctx) error {
	return c.JSON(HealthResponse{
		Status:  "ok",
		Version: Version,
	})
}

// Ready reports readiness. The proxy holds no connections or state, so
// being up is being ready.
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	return c.JSON(HealthResponse{
		Status: "ready",
	})
}
