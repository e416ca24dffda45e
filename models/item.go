package models

import "strings"

// Item is a wishlist entry. Notes holds the contents of every note
// currently linked to the item, in note creation order; it is derived
// from the link table and never stored on the item row itself.
type Item struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Quantity int      `json:"quantity"`
	Priority Priority `json:"priority"`
	URL      string   `json:"url,omitempty"`
	Notes    []string `json:"notes"`
}

// Equal reports whether two items describe the same entry. IDs are
// compared case-insensitively; the derived note lists are not part of
// item identity.
func (i Item) Equal(other Item) bool {
	return strings.EqualFold(i.ID, other.ID) &&
		i.Name == other.Name &&
		i.Quantity == other.Quantity &&
		i.Priority == other.Priority &&
		i.URL == other.URL
}

// ItemRequest is the payload for creating, updating, or upserting an
// item.
type ItemRequest struct {
	ID       string   `json:"id" validate:"omitempty,max=255"`
	Name     string   `json:"name" validate:"max=500"`
	Quantity int      `json:"quantity" validate:"omitempty,min=1"`
	Priority string   `json:"priority" validate:"omitempty,priority"`
	URL      string   `json:"url" validate:"omitempty,url"`
	Notes    []string `json:"notes" validate:"dive,max=2000"`
}

// Item converts the request into the domain value. Defaults for
// generated and omitted fields are filled by the service layer.
func (r ItemRequest) Item() Item {
	return Item{
		ID:       r.ID,
		Name:     r.Name,
		Quantity: r.Quantity,
		Priority: Priority(r.Priority),
		URL:      r.URL,
		Notes:    r.Notes,
	}
}
