package services

import (
	"gift-registry/database"
	"gift-registry/models"
)

// NoteService handles business logic for notes and item-note links.
type NoteService struct {
	repo NoteRepository
}

// NewNoteService creates a new note service
func NewNoteService(repo NoteRepository) *NoteService {
	return &NoteService{repo: repo}
}

// List returns every stored note in creation order.
func (s *NoteService) List() ([]models.Note, error) {
	return s.repo.ListNotes()
}

// Add stores a note unless identical content already exists.
func (s *NoteService) Add(content string) error {
	return s.repo.AddNote(content)
}

// Update overwrites the content of the note with the id. Returns
// database.ErrNoteNotFound when the id is unknown.
func (s *NoteService) Update(id int64, content string) error {
	note, err := s.repo.GetNote(id)
	if err != nil {
		return err
	}
	if note == nil {
		return database.ErrNoteNotFound
	}

	return s.repo.UpdateNote(id, content)
}

// Delete removes the note and every link pointing at it. Returns
// database.ErrNoteNotFound when the id is unknown.
func (s *NoteService) Delete(id int64) error {
	note, err := s.repo.GetNote(id)
	if err != nil {
		return err
	}
	if note == nil {
		return database.ErrNoteNotFound
	}

	return s.repo.DeleteNote(id)
}

// Link attaches the note to the item; both must exist.
func (s *NoteService) Link(noteID int64, itemID string) error {
	return s.repo.Link(noteID, itemID)
}

// Unlink detaches the note from the item; a pair that is not linked is
// left alone.
func (s *NoteService) Unlink(itemID string, noteID int64) error {
	return s.repo.Unlink(itemID, noteID)
}
