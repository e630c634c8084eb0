package handler

import (
	"context"
	"time"

	"talent-sync/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db    Pinger
	cache Pinger
}

// NewHealthHandler takes optional dependencies; a nil one is reported as
// "disabled" and does not fail the check.
func NewHealthHandler(db Pinger, cache Pinger) *HealthHandler {
	return &HealthHandler{db: db, cache: cache}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/health", h.HandleHealth)
}

func (h *HealthHandler) HandleHealth(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	out := fiber.Map{
		"database": pingStatus(ctx, h.db),
		"cache":    pingStatus(ctx, h.cache),
	}
	if out["database"] == "down" {
		return response.Error(c, fiber.StatusServiceUnavailable, "unhealthy", out)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func pingStatus(ctx context.Context, p Pinger) string {
	if p == nil {
		return "disabled"
	}
	if err := p.Ping(ctx); err != nil {
		return "down"
	}
	return "up"
}
