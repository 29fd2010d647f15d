package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/avsafe/occurrence-portal/internal/httpresponse"
	"github.com/avsafe/occurrence-portal/internal/occurrences"
)

// OccurrenceAPI handles the public occurrence browsing endpoint.
type OccurrenceAPI struct {
	Router            fiber.Router
	OccurrenceService *occurrences.Service
}

// Register mounts the listing route.
func (api *OccurrenceAPI) Register() {
	api.Router.Get("/occurrences", func(c *fiber.Ctx) error {
		ctx := c.UserContext()

		page, err := api.OccurrenceService.List(ctx, occurrences.Query{
			Page:    c.QueryInt("page", 1),
			PerPage: c.QueryInt("per_page", occurrences.DefaultPerPage),
			Search:  c.Query("search"),
			Type:    c.Query("type"),
		})
		if err != nil {
			return httpresponse.Error(c, "Failed to list occurrences", err)
		}

		return httpresponse.Success(c, fiber.Map{
			"data":       page.Records,
			"pagination": page.Pagination,
		})
	})
}
