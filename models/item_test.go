package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestItem_Equal(t *testing.T) {
	base := Item{
		ID:       "switch",
		Name:     "Switch",
		Quantity: 2,
		Priority: PriorityHigh,
		URL:      "https://example.com/switch",
		Notes:    []string{"gift wrap it"},
	}

	t.Run("Ids match case-insensitively", func(t *testing.T) {
		other := base
		other.ID = "SWITCH"
		assert.True(t, base.Equal(other))
	})

	t.Run("Note lists are not part of identity", func(t *testing.T) {
		other := base
		other.Notes = nil
		assert.True(t, base.Equal(other))
	})

	t.Run("Scalar differences break equality", func(t *testing.T) {
		other := base
		other.Quantity = 3
		assert.False(t, base.Equal(other))

		other = base
		other.Priority = PriorityLow
		assert.False(t, base.Equal(other))

		other = base
		other.URL = ""
		assert.False(t, base.Equal(other))
	})
}
