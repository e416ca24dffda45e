package services

import (
	"github.com/google/uuid"

	"gift-registry/database"
	"gift-registry/export"
	"gift-registry/models"
)

// ItemService handles business logic for wishlist items.
type ItemService struct {
	repo ItemRepository
}

// NewItemService creates a new item service
func NewItemService(repo ItemRepository) *ItemService {
	return &ItemService{repo: repo}
}

// List returns the authoritative item collection. Callers re-render
// from this after every mutation instead of patching local state.
func (s *ItemService) List() ([]models.Item, error) {
	return s.repo.ListItems()
}

// Get retrieves a single item by id, matched case-insensitively.
func (s *ItemService) Get(id string) (*models.Item, error) {
	return s.repo.GetItem(id)
}

// Add stores a new item and returns it with generated and defaulted
// fields filled in. Adding a duplicate id is a no-op in storage.
func (s *ItemService) Add(item models.Item) (models.Item, error) {
	item, err := normalize(item)
	if err != nil {
		return item, err
	}
	return item, s.repo.AddItem(item)
}

// Update overwrites the stored item sharing the id. Returns
// database.ErrItemNotFound when no stored item carries the id, so the
// transport layer can distinguish a miss from success.
func (s *ItemService) Update(item models.Item) error {
	item, err := normalize(item)
	if err != nil {
		return err
	}

	stored, err := s.repo.GetItem(item.ID)
	if err != nil {
		return err
	}
	if stored == nil {
		return database.ErrItemNotFound
	}

	return s.repo.UpdateItem(item)
}

// Delete removes the item and its note links; linked notes survive.
func (s *ItemService) Delete(id string) error {
	stored, err := s.repo.GetItem(id)
	if err != nil {
		return err
	}
	if stored == nil {
		return database.ErrItemNotFound
	}

	return s.repo.DeleteItem(id)
}

// Upsert updates the stored item with the same id or adds a new one.
func (s *ItemService) Upsert(item models.Item) (models.Item, error) {
	item, err := normalize(item)
	if err != nil {
		return item, err
	}
	return item, s.repo.UpsertItem(item)
}

// Import decodes the payload in the given format and reconciles every
// decoded item against the store: existing ids are updated, the rest
// are added. Returns the number of decoded items.
func (s *ItemService) Import(format string, data []byte) (int, error) {
	var items []models.Item
	switch format {
	case "json":
		decoded, err := export.UnmarshalItems(data)
		if err != nil {
			return 0, err
		}
		items = decoded
	case "tsv":
		items = export.UnmarshalTSV(data)
	default:
		return 0, ErrUnsupportedFormat
	}

	return len(items), s.repo.UpsertItems(items)
}

// Export renders the current collection in the given format and
// returns the payload with its content type.
func (s *ItemService) Export(format string) ([]byte, string, error) {
	items, err := s.repo.ListItems()
	if err != nil {
		return nil, "", err
	}

	switch format {
	case "json":
		data, err := export.MarshalItems(items)
		return data, "application/json", err
	case "tsv":
		return export.MarshalTSV(items), "text/tab-separated-values", nil
	case "html":
		return export.MarshalHTML(items), "text/html; charset=utf-8", nil
	default:
		return nil, "", ErrUnsupportedFormat
	}
}

// normalize fills generated and defaulted fields before an item
// reaches storage.
func normalize(item models.Item) (models.Item, error) {
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	if item.Quantity < 1 {
		item.Quantity = 1
	}
	if item.Priority == "" {
		item.Priority = models.PriorityLow
	}
	if !item.Priority.Valid() {
		return item, ErrInvalidPriority
	}
	return item, nil
}
