package services

import "gift-registry/models"

// ItemRepository defines the item persistence surface used by
// services.
type ItemRepository interface {
	ListItems() ([]models.Item, error)
	GetItem(id string) (*models.Item, error)
	AddItem(item models.Item) error
	UpdateItem(item models.Item) error
	DeleteItem(id string) error
	UpsertItem(item models.Item) error
	UpsertItems(items []models.Item) error
}

// NoteRepository defines the note and link persistence surface used by
// services.
type NoteRepository interface {
	ListNotes() ([]models.Note, error)
	GetNote(id int64) (*models.Note, error)
	AddNote(content string) error
	UpdateNote(id int64, content string) error
	DeleteNote(id int64) error
	Link(noteID int64, itemID string) error
	Unlink(itemID string, noteID int64) error
}
