package export

import (
	"strconv"
	"strings"

	"github.com/google/uuid"

	"gift-registry/models"
)

const tsvFieldCount = 5

// MarshalTSV renders items, highest priority first, one record per
// line with id, name, quantity, priority, and url separated by tabs.
// This format carries no notes.
func MarshalTSV(items []models.Item) []byte {
	lines := make([]string, 0, len(items))
	for _, item := range SortedByPriority(items) {
		fields := []string{
			item.ID,
			item.Name,
			strconv.Itoa(item.Quantity),
			string(item.Priority),
			item.URL,
		}
		lines = append(lines, strings.Join(fields, "\t"))
	}
	return []byte(strings.Join(lines, "\n"))
}

// UnmarshalTSV parses tab-separated item records. Lines that do not
// split into exactly five fields are dropped; blank fields fall back
// to the item defaults, and a blank id gets a freshly generated one.
func UnmarshalTSV(data []byte) []models.Item {
	normalized := strings.ReplaceAll(string(data), "\r\n", "\n")

	items := make([]models.Item, 0)
	for _, line := range strings.Split(normalized, "\n") {
		if line == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) != tsvFieldCount {
			continue
		}

		item := models.Item{
			ID:       fields[0],
			Name:     fields[1],
			Quantity: 1,
			Priority: models.PriorityLow,
			URL:      fields[4],
			Notes:    []string{},
		}
		if item.ID == "" {
			item.ID = uuid.NewString()
		}
		if quantity, err := strconv.Atoi(fields[2]); err == nil {
			item.Quantity = quantity
		}
		if fields[3] != "" {
			item.Priority = models.ParsePriority(fields[3])
		}

		items = append(items, item)
	}
	return items
}
