package database

import (
	"database/sql"
	"errors"
	"fmt"

	"gift-registry/models"
)

// ==================== ITEM OPERATIONS ====================

// GetItem retrieves a single item by id, with its linked note contents
// populated. Ids match case-insensitively. Returns nil when no item
// carries the id.
func (r *Repository) GetItem(id string) (*models.Item, error) {
	var item models.Item
	var priority string
	var url sql.NullString

	err := r.db.QueryRow(`
		SELECT id, name, quantity, priority, url
		FROM items
		WHERE id = ?
	`, id).Scan(&item.ID, &item.Name, &item.Quantity, &priority, &url)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	item.Priority = models.ParsePriority(priority)
	item.URL = url.String

	notes, err := r.noteContents(item.ID)
	if err != nil {
		return nil, err
	}
	item.Notes = notes

	return &item, nil
}

// ListItems returns every stored item with its linked note contents
// populated. Items come back in relation scan order.
func (r *Repository) ListItems() ([]models.Item, error) {
	rows, err := r.db.Query(`SELECT id, name, quantity, priority, url FROM items`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	// Initialize with empty slice to avoid returning nil
	items := make([]models.Item, 0)
	for rows.Next() {
		var item models.Item
		var priority string
		var url sql.NullString
		if err := rows.Scan(&item.ID, &item.Name, &item.Quantity, &priority, &url); err != nil {
			return nil, err
		}
		item.Priority = models.ParsePriority(priority)
		item.URL = url.String
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range items {
		notes, err := r.noteContents(items[i].ID)
		if err != nil {
			return nil, err
		}
		items[i].Notes = notes
	}

	return items, nil
}

// AddItem inserts a new item. Adding an item whose id already exists
// (case-insensitively) is a no-op. Notes supplied on the item are
// reconciled against the stored notes: matching content links to the
// existing note, anything else becomes a new note.
func (r *Repository) AddItem(item models.Item) error {
	existing, err := r.GetItem(item.ID)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	_, err = r.db.Exec(`
		INSERT INTO items (id, name, quantity, priority, url)
		VALUES (?, ?, ?, ?, ?)
	`, item.ID, item.Name, item.Quantity, string(item.Priority), nullableURL(item.URL))
	if err != nil {
		return err
	}

	return r.attachNotes(item.ID, item.Notes)
}

// UpdateItem overwrites the scalar columns of the stored item sharing
// the id, then attaches any note contents not already on it. Updating
// a missing id is a no-op. Stored links are never removed here;
// detaching a note goes through Unlink.
func (r *Repository) UpdateItem(item models.Item) error {
	stored, err := r.GetItem(item.ID)
	if err != nil || stored == nil {
		return err
	}

	_, err = r.db.Exec(`
		UPDATE items SET name = ?, quantity = ?, priority = ?, url = ?
		WHERE id = ?
	`, item.Name, item.Quantity, string(item.Priority), nullableURL(item.URL), item.ID)
	if err != nil {
		return err
	}

	attached := make(map[string]bool, len(stored.Notes))
	for _, content := range stored.Notes {
		attached[content] = true
	}

	var newNotes []string
	for _, content := range item.Notes {
		if !attached[content] {
			newNotes = append(newNotes, content)
		}
	}

	return r.attachNotes(stored.ID, newNotes)
}

// DeleteItem removes the item row and every link pointing at it. The
// notes themselves stay; they may be shared with other items. Deleting
// a missing id is a no-op.
func (r *Repository) DeleteItem(id string) error {
	stored, err := r.GetItem(id)
	if err != nil || stored == nil {
		return err
	}

	if _, err := r.db.Exec(`DELETE FROM items WHERE id = ?`, id); err != nil {
		return err
	}

	_, err = r.db.Exec(`DELETE FROM item_notes WHERE item_id = ?`, id)
	return err
}

// UpsertItem routes to UpdateItem when an item with the id already
// exists (case-insensitively) and to AddItem otherwise. Bulk import
// goes through here.
func (r *Repository) UpsertItem(item models.Item) error {
	stored, err := r.GetItem(item.ID)
	if err != nil {
		return err
	}
	if stored != nil {
		return r.UpdateItem(item)
	}
	return r.AddItem(item)
}

// UpsertItems applies UpsertItem to each element in input order. A
// failing element does not stop the remainder; all failures are
// reported together.
func (r *Repository) UpsertItems(items []models.Item) error {
	var errs []error
	for _, item := range items {
		if err := r.UpsertItem(item); err != nil {
			errs = append(errs, fmt.Errorf("upsert item %q: %w", item.ID, err))
		}
	}
	return errors.Join(errs...)
}

// nullableURL maps the empty string to NULL so absent urls are stored
// as the column default rather than as empty text.
func nullableURL(url string) any {
	if url == "" {
		return nil
	}
	return url
}
