package database

import "errors"

// Sentinel errors for operations whose referents must exist.
var (
	ErrItemNotFound = errors.New("item not found")
	ErrNoteNotFound = errors.New("note not found")
)
