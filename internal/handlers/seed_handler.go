package handlers

import (
	"github.com/gofiber/fiber/v2"

	"tokobaju/internal/services"
)

// SeedHandler exposes the database seeding endpoint.
type SeedHandler struct {
	seedService *services.SeedService
}

// NewSeedHandler creates a new SeedHandler.
func NewSeedHandler(seedService *services.SeedService) *SeedHandler {
	return &SeedHandler{
		seedService: seedService,
	}
}

// RegisterRoutes registers the seed route with the Fiber app.
func (h *SeedHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/seed", h.HandleSeed)
}

// HandleSeed wipes the store and repopulates it with fixture data.
func (h *SeedHandler) HandleSeed(c *fiber.Ctx) error {
	if err := h.seedService.Run(); err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Seed executed",
	})
}
