package database

import "database/sql"

// ==================== ITEM-NOTE LINKS ====================

// Link attaches the note to the item. Both referents must exist;
// linking an already-linked pair is a no-op.
func (r *Repository) Link(noteID int64, itemID string) error {
	note, err := r.GetNote(noteID)
	if err != nil {
		return err
	}
	if note == nil {
		return ErrNoteNotFound
	}

	// Resolve the stored id so junction rows carry its canonical
	// casing.
	var storedID string
	err = r.db.QueryRow(`SELECT id FROM items WHERE id = ?`, itemID).Scan(&storedID)
	if err == sql.ErrNoRows {
		return ErrItemNotFound
	}
	if err != nil {
		return err
	}

	_, err = r.db.Exec(`
		INSERT OR IGNORE INTO item_notes (item_id, note_id) VALUES (?, ?)
	`, storedID, noteID)
	return err
}

// Unlink removes the junction row for the pair. Unlinking a pair that
// is not linked is a no-op.
func (r *Repository) Unlink(itemID string, noteID int64) error {
	_, err := r.db.Exec(`
		DELETE FROM item_notes WHERE item_id = ? AND note_id = ?
	`, itemID, noteID)
	return err
}

// attachNotes links each content string to the item, creating the note
// row first when no stored note carries identical content. The same
// reconciliation backs AddItem, UpdateItem, and bulk import.
func (r *Repository) attachNotes(itemID string, contents []string) error {
	for _, content := range contents {
		var noteID int64
		err := r.db.QueryRow(`SELECT id FROM notes WHERE content = ?`, content).Scan(&noteID)
		switch {
		case err == sql.ErrNoRows:
			res, insertErr := r.db.Exec(`INSERT INTO notes (content) VALUES (?)`, content)
			if insertErr != nil {
				return insertErr
			}
			noteID, insertErr = res.LastInsertId()
			if insertErr != nil {
				return insertErr
			}
		case err != nil:
			return err
		}

		if _, err := r.db.Exec(`
			INSERT OR IGNORE INTO item_notes (item_id, note_id) VALUES (?, ?)
		`, itemID, noteID); err != nil {
			return err
		}
	}
	return nil
}

// noteContents returns the contents of every note linked to the item,
// in note creation order.
func (r *Repository) noteContents(itemID string) ([]string, error) {
	rows, err := r.db.Query(`
		SELECT n.content
		FROM notes n
		JOIN item_notes l ON l.note_id = n.id
		WHERE l.item_id = ?
		ORDER BY n.id ASC
	`, itemID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	contents := make([]string, 0)
	for rows.Next() {
		var content string
		if err := rows.Scan(&content); err != nil {
			return nil, err
		}
		contents = append(contents, content)
	}

	return contents, rows.Err()
}
