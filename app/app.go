package app

import (
	"log/slog"

	"gift-registry/database"
	"gift-registry/services"
	"gift-registry/validator"
)

// App holds all application dependencies
// This struct is the central point for dependency injection: it is
// built once in main and passed to every handler, replacing any
// process-wide singleton lookup.
type App struct {
	Repo      *database.Repository
	Items     *services.ItemService
	Notes     *services.NoteService
	Validator *validator.Validator
	Logger    *slog.Logger
}

// New creates a new App instance with all dependencies
func New(repo *database.Repository, logger *slog.Logger) *App {
	return &App{
		Repo:      repo,
		Items:     services.NewItemService(repo),
		Notes:     services.NewNoteService(repo),
		Validator: validator.New(),
		Logger:    logger,
	}
}
