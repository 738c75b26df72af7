package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/Mansion_Go/internal/domain"
)

func items(names ...string) []*domain.Item {
	out := make([]*domain.Item, len(names))
	for i, name := range names {
		out[i] = &domain.Item{Name: name}
	}
	return out
}

func TestFindItem(t *testing.T) {
	list := items("Umbrella", "Old Key", "old key")

	assert.Equal(t, 1, FindItem(list, "OLD KEY"), "first match wins")
	assert.Equal(t, 0, FindItem(list, "umbrella"))
	assert.Equal(t, -1, FindItem(list, "key"))
	assert.Equal(t, -1, FindItem(list, " old key"), "whitespace is significant")
	assert.Equal(t, -1, FindItem(nil, "key"))
}

func TestFindFirst(t *testing.T) {
	room := items("Lever")
	inventory := items("Lever", "Old Key")

	assert.Same(t, room[0], FindFirst("lever", room, inventory), "earlier list takes precedence")
	assert.Same(t, inventory[1], FindFirst("old key", room, inventory))
	assert.Nil(t, FindFirst("vase", room, inventory))
}

func TestRemoveItemAt(t *testing.T) {
	list := items("A", "B", "C")

	list = RemoveItemAt(list, 1)

	assert.Len(t, list, 2)
	assert.Equal(t, "A", list[0].Name)
	assert.Equal(t, "C", list[1].Name)
}
