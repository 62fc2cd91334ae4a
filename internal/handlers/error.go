package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/minseokoh/localscope/internal/cache"
	"github.com/minseokoh/localscope/internal/logger"
	"github.com/minseokoh/localscope/internal/services"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// ErrorHandler is the custom error handler for Fiber. It maps the
// engine's error kinds onto status codes: unresolved locations are 404,
// provider failures are 502, store failures and anything unexpected
// are 500.
func ErrorHandler(c *fiber.Ctx, err error) error {
	log := logger.GetLogger("handlers")

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).JSON(ErrorResponse{Error: fiberErr.Message})
	}

	var notFound *services.NotFoundError
	if errors.As(err, &notFound) {
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{Error: notFound.Error()})
	}

	var gatewayErr *cache.GatewayError
	if errors.As(err, &gatewayErr) {
		log.Warnw("provider fetch failed", "kind", gatewayErr.Kind, "error", gatewayErr.Err)
		return c.Status(fiber.StatusBadGateway).JSON(ErrorResponse{
			Error:   "upstream provider unavailable",
			Details: gatewayErr.Kind,
		})
	}

	var storeErr *cache.StoreError
	if errors.As(err, &storeErr) {
		log.Errorw("store operation failed", "op", storeErr.Op, "error", storeErr.Err)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Error: "Internal Server Error"})
	}

	log.Errorw("unhandled error", "error", err)
	return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Error: "Internal Server Error"})
}
