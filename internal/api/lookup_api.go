package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/avsafe/occurrence-portal/internal/httpresponse"
	"github.com/avsafe/occurrence-portal/internal/lookup"
)

// LookupAPI handles the aircraft auto-fill lookup endpoint.
type LookupAPI struct {
	Router        fiber.Router
	LookupService *lookup.Service
}

// Register mounts the lookup route.
func (api *LookupAPI) Register() {
	api.Router.Post("/aircraft-lookup", func(c *fiber.Ctx) error {
		ctx := c.UserContext()

		var req struct {
			AircraftConcat string `json:"aircraftConcat"`
		}
		if err := c.BodyParser(&req); err != nil {
			return httpresponse.BadRequest(c, "Request body must be JSON", nil)
		}
		if req.AircraftConcat == "" {
			return httpresponse.BadRequest(c, "aircraftConcat is required", nil)
		}

		details, err := api.LookupService.AircraftByRegistration(ctx, req.AircraftConcat)
		if err != nil {
			if errors.Is(err, lookup.ErrAircraftNotFound) {
				return httpresponse.NotFound(c, "no aircraft found")
			}
			return httpresponse.Error(c, "Aircraft lookup failed", err)
		}

		return httpresponse.Success(c, fiber.Map{"data": details})
	})
}
