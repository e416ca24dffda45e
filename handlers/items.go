package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"gift-registry/app"
	"gift-registry/database"
	"gift-registry/models"
	"gift-registry/services"
)

// GetItems returns the full wishlist with linked note contents
// populated.
func GetItems(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := a.Items.List()
		if err != nil {
			return serverErrorWithDetails(c, "Failed to fetch items", err)
		}
		return success(c, fiber.Map{"items": items})
	}
}

// CreateItem stores a new item and returns the refreshed collection.
func CreateItem(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.ItemRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if err := a.Validator.Validate(req); err != nil {
			return badRequest(c, err.Error())
		}

		item, err := a.Items.Add(req.Item())
		if err != nil {
			if errors.Is(err, services.ErrInvalidPriority) {
				return badRequest(c, err.Error())
			}
			return serverErrorWithDetails(c, "Failed to create item", err)
		}

		items, err := a.Items.List()
		if err != nil {
			return serverErrorWithDetails(c, "Failed to fetch items", err)
		}
		return created(c, fiber.Map{"item": item, "items": items})
	}
}

// UpdateItem overwrites the item addressed by the path id.
func UpdateItem(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.ItemRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		req.ID = c.Params("id")
		if err := a.Validator.Validate(req); err != nil {
			return badRequest(c, err.Error())
		}

		if err := a.Items.Update(req.Item()); err != nil {
			switch {
			case errors.Is(err, database.ErrItemNotFound):
				return notFound(c, "Item not found")
			case errors.Is(err, services.ErrInvalidPriority):
				return badRequest(c, err.Error())
			default:
				return serverErrorWithDetails(c, "Failed to update item", err)
			}
		}

		items, err := a.Items.List()
		if err != nil {
			return serverErrorWithDetails(c, "Failed to fetch items", err)
		}
		return success(c, fiber.Map{"items": items})
	}
}

// UpsertItem updates the stored item with the payload id or adds a new
// one; the id match is case-insensitive.
func UpsertItem(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.ItemRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if err := a.Validator.Validate(req); err != nil {
			return badRequest(c, err.Error())
		}

		item, err := a.Items.Upsert(req.Item())
		if err != nil {
			if errors.Is(err, services.ErrInvalidPriority) {
				return badRequest(c, err.Error())
			}
			return serverErrorWithDetails(c, "Failed to upsert item", err)
		}

		items, err := a.Items.List()
		if err != nil {
			return serverErrorWithDetails(c, "Failed to fetch items", err)
		}
		return success(c, fiber.Map{"item": item, "items": items})
	}
}

// DeleteItem removes the item and its note links. Linked notes stay in
// the store.
func DeleteItem(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := a.Items.Delete(c.Params("id")); err != nil {
			if errors.Is(err, database.ErrItemNotFound) {
				return notFound(c, "Item not found")
			}
			return serverErrorWithDetails(c, "Failed to delete item", err)
		}

		items, err := a.Items.List()
		if err != nil {
			return serverErrorWithDetails(c, "Failed to fetch items", err)
		}
		return success(c, fiber.Map{"items": items})
	}
}
