package database

import (
	"database/sql"

	"gift-registry/models"
)

// ==================== NOTE OPERATIONS ====================

// ListNotes returns every stored note in creation order.
func (r *Repository) ListNotes() ([]models.Note, error) {
	rows, err := r.db.Query(`SELECT id, content FROM notes ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notes := make([]models.Note, 0)
	for rows.Next() {
		var note models.Note
		if err := rows.Scan(&note.ID, &note.Content); err != nil {
			return nil, err
		}
		notes = append(notes, note)
	}

	return notes, rows.Err()
}

// GetNote retrieves a single note by id. Returns nil when the id is
// unknown.
func (r *Repository) GetNote(id int64) (*models.Note, error) {
	var note models.Note
	err := r.db.QueryRow(`SELECT id, content FROM notes WHERE id = ?`, id).
		Scan(&note.ID, &note.Content)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &note, nil
}

// AddNote inserts a note unless one with identical content already
// exists. Content is the dedup key, so the same text typed on two
// items collapses into a single stored note.
func (r *Repository) AddNote(content string) error {
	var id int64
	err := r.db.QueryRow(`SELECT id FROM notes WHERE content = ?`, content).Scan(&id)
	if err == nil {
		return nil
	}
	if err != sql.ErrNoRows {
		return err
	}

	_, err = r.db.Exec(`INSERT INTO notes (content) VALUES (?)`, content)
	return err
}

// UpdateNote overwrites the content of the note with the id. Updating
// a missing id is a no-op.
func (r *Repository) UpdateNote(id int64, content string) error {
	note, err := r.GetNote(id)
	if err != nil || note == nil {
		return err
	}

	_, err = r.db.Exec(`UPDATE notes SET content = ? WHERE id = ?`, content, id)
	return err
}

// DeleteNote unlinks the note from every item, then removes the note
// row. Unlinking first keeps the junction table free of rows that
// reference a note that no longer exists. Deleting a missing id is a
// no-op.
func (r *Repository) DeleteNote(id int64) error {
	note, err := r.GetNote(id)
	if err != nil || note == nil {
		return err
	}

	if _, err := r.db.Exec(`DELETE FROM item_notes WHERE note_id = ?`, id); err != nil {
		return err
	}

	_, err = r.db.Exec(`DELETE FROM notes WHERE id = ?`, id)
	return err
}
