package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"gift-registry/app"
	"gift-registry/database"
	"gift-registry/models"
)

// GetNotes returns every stored note in creation order.
func GetNotes(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		notes, err := a.Notes.List()
		if err != nil {
			return serverErrorWithDetails(c, "Failed to fetch notes", err)
		}
		return success(c, fiber.Map{"notes": notes})
	}
}

// CreateNote stores a note; identical content is deduplicated into the
// existing row.
func CreateNote(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.NoteRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if err := a.Validator.Validate(req); err != nil {
			return badRequest(c, err.Error())
		}

		if err := a.Notes.Add(req.Content); err != nil {
			return serverErrorWithDetails(c, "Failed to create note", err)
		}

		notes, err := a.Notes.List()
		if err != nil {
			return serverErrorWithDetails(c, "Failed to fetch notes", err)
		}
		return created(c, fiber.Map{"notes": notes})
	}
}

// UpdateNote overwrites the content of the note addressed by the path
// id.
func UpdateNote(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := noteID(c)
		if err != nil {
			return badRequest(c, "Invalid note id")
		}

		var req models.NoteRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if err := a.Validator.Validate(req); err != nil {
			return badRequest(c, err.Error())
		}

		if err := a.Notes.Update(id, req.Content); err != nil {
			if errors.Is(err, database.ErrNoteNotFound) {
				return notFound(c, "Note not found")
			}
			return serverErrorWithDetails(c, "Failed to update note", err)
		}

		notes, err := a.Notes.List()
		if err != nil {
			return serverErrorWithDetails(c, "Failed to fetch notes", err)
		}
		return success(c, fiber.Map{"notes": notes})
	}
}

// DeleteNote removes the note and every link pointing at it.
func DeleteNote(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := noteID(c)
		if err != nil {
			return badRequest(c, "Invalid note id")
		}

		if err := a.Notes.Delete(id); err != nil {
			if errors.Is(err, database.ErrNoteNotFound) {
				return notFound(c, "Note not found")
			}
			return serverErrorWithDetails(c, "Failed to delete note", err)
		}

		notes, err := a.Notes.List()
		if err != nil {
			return serverErrorWithDetails(c, "Failed to fetch notes", err)
		}
		return success(c, fiber.Map{"notes": notes})
	}
}

// LinkNote attaches the note to the item addressed by the path.
func LinkNote(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.ParseInt(c.Params("noteID"), 10, 64)
		if err != nil {
			return badRequest(c, "Invalid note id")
		}

		if err := a.Notes.Link(id, c.Params("id")); err != nil {
			switch {
			case errors.Is(err, database.ErrItemNotFound):
				return notFound(c, "Item not found")
			case errors.Is(err, database.ErrNoteNotFound):
				return notFound(c, "Note not found")
			default:
				return serverErrorWithDetails(c, "Failed to link note", err)
			}
		}

		items, err := a.Items.List()
		if err != nil {
			return serverErrorWithDetails(c, "Failed to fetch items", err)
		}
		return success(c, fiber.Map{"items": items})
	}
}

// UnlinkNote detaches the note from the item addressed by the path.
func UnlinkNote(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.ParseInt(c.Params("noteID"), 10, 64)
		if err != nil {
			return badRequest(c, "Invalid note id")
		}

		if err := a.Notes.Unlink(c.Params("id"), id); err != nil {
			return serverErrorWithDetails(c, "Failed to unlink note", err)
		}

		items, err := a.Items.List()
		if err != nil {
			return serverErrorWithDetails(c, "Failed to fetch items", err)
		}
		return success(c, fiber.Map{"items": items})
	}
}

func noteID(c *fiber.Ctx) (int64, error) {
	return strconv.ParseInt(c.Params("id"), 10, 64)
}
