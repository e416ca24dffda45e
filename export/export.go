// Package export converts the item collection to and from its
// interchange formats: JSON (bidirectional), tab-separated records
// (bidirectional, no notes), and a static HTML registry page
// (generated only).
package export

import (
	"sort"

	"gift-registry/models"
)

// SortedByPriority returns a copy of items ordered by descending
// priority. Ties keep their input order.
func SortedByPriority(items []models.Item) []models.Item {
	sorted := make([]models.Item, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Priority.SortOrder() > sorted[j].Priority.SortOrder()
	})
	return sorted
}
