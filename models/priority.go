package models

// Priority is the urgency level attached to a wishlist item. The
// declaration order of the levels defines their sort order, lowest
// first.
type Priority string

const (
	PriorityLow     Priority = "low"
	PriorityMedium  Priority = "medium"
	PriorityHigh    Priority = "high"
	PriorityHighest Priority = "highest"
)

// Priorities returns all levels in ascending order.
func Priorities() []Priority {
	return []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityHighest}
}

// Valid reports whether p is one of the known levels.
func (p Priority) Valid() bool {
	return p.SortOrder() >= 0
}

// SortOrder returns the position of p within the ascending level
// order. Unknown values sort below low.
func (p Priority) SortOrder() int {
	for i, level := range Priorities() {
		if p == level {
			return i
		}
	}
	return -1
}

// ParsePriority maps s to a known level, falling back to low.
func ParsePriority(s string) Priority {
	p := Priority(s)
	if !p.Valid() {
		return PriorityLow
	}
	return p
}
