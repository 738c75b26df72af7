package utils

import (
	"github.com/osse101/Mansion_Go/internal/domain"
	"github.com/osse101/Mansion_Go/internal/naming"
)

// FindItem returns the index of the first item whose name matches (ignoring
// case), or -1 when there is none.
func FindItem(items []*domain.Item, name string) int {
	for i, item := range items {
		if naming.Equal(item.Name, name) {
			return i
		}
	}
	return -1
}

// FindFirst searches each list in order and returns the first matching item.
func FindFirst(name string, lists ...[]*domain.Item) *domain.Item {
	for _, items := range lists {
		if i := FindItem(items, name); i >= 0 {
			return items[i]
		}
	}
	return nil
}

// RemoveItemAt removes the item at index i, preserving the order of the rest.
func RemoveItemAt(items []*domain.Item, i int) []*domain.Item {
	return append(items[:i], items[i+1:]...)
}
