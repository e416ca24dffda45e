package export

import (
	"encoding/json"

	"github.com/google/uuid"

	"gift-registry/models"
)

// itemRecord is the wire form of an item. Optional fields are pointers
// so defaults can be omitted on output and detected on input.
type itemRecord struct {
	ID       *string          `json:"id,omitempty"`
	Name     string           `json:"name"`
	Quantity *int             `json:"quantity,omitempty"`
	Priority *models.Priority `json:"priority,omitempty"`
	URL      *string          `json:"url,omitempty"`
	Notes    []string         `json:"notes,omitempty"`
}

func toRecord(item models.Item) itemRecord {
	rec := itemRecord{ID: &item.ID, Name: item.Name}
	if item.Quantity > 1 {
		rec.Quantity = &item.Quantity
	}
	if item.Priority != models.PriorityLow {
		priority := item.Priority
		rec.Priority = &priority
	}
	if item.URL != "" {
		url := item.URL
		rec.URL = &url
	}
	if len(item.Notes) > 0 {
		rec.Notes = item.Notes
	}
	return rec
}

func fromRecord(rec itemRecord) models.Item {
	item := models.Item{
		Name:     rec.Name,
		Quantity: 1,
		Priority: models.PriorityLow,
		Notes:    []string{},
	}
	if rec.ID != nil && *rec.ID != "" {
		item.ID = *rec.ID
	} else {
		item.ID = uuid.NewString()
	}
	if rec.Quantity != nil {
		item.Quantity = *rec.Quantity
	}
	if rec.Priority != nil {
		item.Priority = models.ParsePriority(string(*rec.Priority))
	}
	if rec.URL != nil {
		item.URL = *rec.URL
	}
	if rec.Notes != nil {
		item.Notes = rec.Notes
	}
	return item
}

// MarshalItems encodes items as a pretty-printed JSON array. Fields
// still carrying their defaults (quantity 1, priority low, absent url,
// no notes) are omitted to keep exported files terse; id and name are
// always present.
func MarshalItems(items []models.Item) ([]byte, error) {
	records := make([]itemRecord, len(items))
	for i, item := range items {
		records[i] = toRecord(item)
	}
	return json.MarshalIndent(records, "", "  ")
}

// UnmarshalItems decodes a JSON array of items, filling absent fields
// with their defaults. An element without an id gets a freshly
// generated one.
func UnmarshalItems(data []byte) ([]models.Item, error) {
	var records []itemRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, err
	}

	items := make([]models.Item, len(records))
	for i, rec := range records {
		items[i] = fromRecord(rec)
	}
	return items, nil
}
