package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"gift-registry/app"
	"gift-registry/services"
)

// ImportItems reconciles an uploaded JSON or TSV payload against the
// store: items with known ids are updated, the rest are added. A bad
// element does not abort the rest of the batch.
func ImportItems(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		format := c.Query("format", "json")

		count, err := a.Items.Import(format, c.Body())
		if err != nil {
			if errors.Is(err, services.ErrUnsupportedFormat) {
				return badRequest(c, "format must be json or tsv")
			}
			return serverErrorWithDetails(c, "Failed to import items", err)
		}

		items, err := a.Items.List()
		if err != nil {
			return serverErrorWithDetails(c, "Failed to fetch items", err)
		}
		return success(c, fiber.Map{"imported": count, "items": items})
	}
}

// ExportItems renders the collection as JSON, TSV, or a static HTML
// registry page.
func ExportItems(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		format := c.Query("format", "json")

		data, contentType, err := a.Items.Export(format)
		if err != nil {
			if errors.Is(err, services.ErrUnsupportedFormat) {
				return badRequest(c, "format must be json, tsv, or html")
			}
			return serverErrorWithDetails(c, "Failed to export items", err)
		}

		c.Set(fiber.HeaderContentType, contentType)
		return c.Send(data)
	}
}
