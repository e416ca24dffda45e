package models

// Note is a reusable piece of free text attachable to any number of
// items. Content doubles as the dedup key: the repository never stores
// two notes with identical content.
type Note struct {
	ID      int64  `json:"id"`
	Content string `json:"content"`
}

// NoteRequest is the payload for creating or updating a note.
type NoteRequest struct {
	Content string `json:"content" validate:"max=2000"`
}
