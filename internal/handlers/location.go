package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/minseokoh/localscope/internal/database"
	"github.com/minseokoh/localscope/internal/providers"
	"github.com/minseokoh/localscope/internal/services"
)

type LocationHandler struct {
	service *services.LocationService
}

func NewLocationHandler(db *database.DB, p *providers.Clients) *LocationHandler {
	return &LocationHandler{
		service: services.NewLocationService(db, p.Geocoder),
	}
}

func SetupLocationRoutes(router fiber.Router, db *database.DB, p *providers.Clients) {
	h := NewLocationHandler(db, p)

	router.Get("/resolve", h.Resolve)
}

// Resolve godoc
// @Summary Resolve a free-text query to a canonical location
// @Tags locations
// @Accept json
// @Produce json
// @Param q query string true "Search text"
// @Success 200 {object} models.Location
// @Failure 404 {object} ErrorResponse
// @Router /locations/resolve [get]
func (h *LocationHandler) Resolve(c *fiber.Ctx) error {
	q := c.Query("q")
	if q == "" {
		return fiber.NewError(fiber.StatusBadRequest, "query parameter q is required")
	}

	loc, err := h.service.Resolve(c.Context(), q)
	if err != nil {
		return err
	}

	return c.JSON(loc)
}
