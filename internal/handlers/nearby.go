package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/minseokoh/localscope/internal/config"
	"github.com/minseokoh/localscope/internal/database"
	"github.com/minseokoh/localscope/internal/models"
	"github.com/minseokoh/localscope/internal/providers"
	"github.com/minseokoh/localscope/internal/services"
)

type NearbyHandler struct {
	locations *services.LocationService
	nearby    *services.NearbyService
}

func NewNearbyHandler(db *database.DB, cfg *config.Config, p *providers.Clients) *NearbyHandler {
	return &NearbyHandler{
		locations: services.NewLocationService(db, p.Geocoder),
		nearby:    services.NewNearbyService(db, cfg, p),
	}
}

func SetupNearbyRoutes(router fiber.Router, db *database.DB, cfg *config.Config, p *providers.Clients) {
	h := NewNearbyHandler(db, cfg, p)

	router.Get("/weather", h.Weather)
	router.Get("/events", h.Events)
	router.Get("/movies", h.Movies)
	router.Get("/reviews", h.Reviews)
}

type WeatherResponse struct {
	Location models.Location  `json:"location"`
	Items    []models.Weather `json:"items"`
}

type EventsResponse struct {
	Location models.Location `json:"location"`
	Items    []models.Event  `json:"items"`
}

type MoviesResponse struct {
	Location models.Location `json:"location"`
	Items    []models.Movie  `json:"items"`
}

type ReviewsResponse struct {
	Location models.Location `json:"location"`
	Items    []models.Review `json:"items"`
}

// resolve maps the q query parameter to a canonical location.
func (h *NearbyHandler) resolve(c *fiber.Ctx) (*models.Location, error) {
	q := c.Query("q")
	if q == "" {
		return nil, fiber.NewError(fiber.StatusBadRequest, "query parameter q is required")
	}
	return h.locations.Resolve(c.Context(), q)
}

// Weather godoc
// @Summary Forecast entries for a location
// @Tags nearby
// @Accept json
// @Produce json
// @Param q query string true "Search text"
// @Success 200 {object} WeatherResponse
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /weather [get]
func (h *NearbyHandler) Weather(c *fiber.Ctx) error {
	loc, err := h.resolve(c)
	if err != nil {
		return err
	}

	items, err := h.nearby.Weather(c.Context(), *loc)
	if err != nil {
		return err
	}

	return c.JSON(WeatherResponse{Location: *loc, Items: items})
}

// Events godoc
// @Summary Events scheduled around a location
// @Tags nearby
// @Accept json
// @Produce json
// @Param q query string true "Search text"
// @Success 200 {object} EventsResponse
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /events [get]
func (h *NearbyHandler) Events(c *fiber.Ctx) error {
	loc, err := h.resolve(c)
	if err != nil {
		return err
	}

	items, err := h.nearby.Events(c.Context(), *loc)
	if err != nil {
		return err
	}

	return c.JSON(EventsResponse{Location: *loc, Items: items})
}

// Movies godoc
// @Summary Movies tied to a location's locality
// @Tags nearby
// @Accept json
// @Produce json
// @Param q query string true "Search text"
// @Success 200 {object} MoviesResponse
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /movies [get]
func (h *NearbyHandler) Movies(c *fiber.Ctx) error {
	loc, err := h.resolve(c)
	if err != nil {
		return err
	}

	items, err := h.nearby.Movies(c.Context(), *loc)
	if err != nil {
		return err
	}

	return c.JSON(MoviesResponse{Location: *loc, Items: items})
}

// Reviews godoc
// @Summary Local-business reviews around a location
// @Tags nearby
// @Accept json
// @Produce json
// @Param q query string true "Search text"
// @Success 200 {object} ReviewsResponse
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /reviews [get]
func (h *NearbyHandler) Reviews(c *fiber.Ctx) error {
	loc, err := h.resolve(c)
	if err != nil {
		return err
	}

	items, err := h.nearby.Reviews(c.Context(), *loc)
	if err != nil {
		return err
	}

	return c.JSON(ReviewsResponse{Location: *loc, Items: items})
}
