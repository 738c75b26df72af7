package game

import (
	"context"
	"fmt"
	"strings"

	"github.com/osse101/Mansion_Go/internal/domain"
	"github.com/osse101/Mansion_Go/internal/logger"
	"github.com/osse101/Mansion_Go/internal/metrics"
	"github.com/osse101/Mansion_Go/internal/utils"
)

// Inspect returns an item's description. Items in the room shadow
// same-named items in the inventory.
func (g *Game) Inspect(ctx context.Context, name string) (string, error) {
	item := utils.FindFirst(name, g.current.Items, g.inventory)
	if item == nil {
		return "", domain.ErrItemNotFound
	}
	return item.Description, nil
}

// Take moves an item from the current room into the inventory
func (g *Game) Take(ctx context.Context, name string) (string, error) {
	if len(g.inventory) >= g.inventoryLimit {
		return "", domain.ErrInventoryFull
	}

	i := utils.FindItem(g.current.Items, name)
	if i < 0 {
		return "", domain.ErrItemNotFound
	}

	item := g.current.Items[i]
	g.current.Items = utils.RemoveItemAt(g.current.Items, i)
	g.inventory = append(g.inventory, item)

	metrics.ItemTransfersTotal.WithLabelValues(metrics.ActionTake).Inc()
	logger.FromContext(ctx).Debug(LogMsgItemTaken, "item", item.Name, "room", g.current.Name,
		"carried", len(g.inventory))

	return fmt.Sprintf(MsgTakeFormat, item.Name), nil
}

// Drop moves an item from the inventory into the current room
func (g *Game) Drop(ctx context.Context, name string) (string, error) {
	i := utils.FindItem(g.inventory, name)
	if i < 0 {
		return "", domain.ErrNotInInventory
	}

	item := g.inventory[i]
	g.inventory = utils.RemoveItemAt(g.inventory, i)
	g.current.Items = append(g.current.Items, item)

	metrics.ItemTransfersTotal.WithLabelValues(metrics.ActionDrop).Inc()
	logger.FromContext(ctx).Debug(LogMsgItemDropped, "item", item.Name, "room", g.current.Name,
		"carried", len(g.inventory))

	return fmt.Sprintf(MsgDropFormat, item.Name), nil
}

// ShowInventory lists the carried items
func (g *Game) ShowInventory(ctx context.Context) string {
	if len(g.inventory) == 0 {
		return MsgInventoryEmpty
	}

	lines := make([]string, 0, len(g.inventory)+1)
	lines = append(lines, MsgInventoryHeader)
	for _, item := range g.inventory {
		lines = append(lines, fmt.Sprintf(MsgInventoryLineFmt, item.Name))
	}
	return strings.Join(lines, "\n")
}

// hasItemNamed reports whether the inventory holds an item with that name
func (g *Game) hasItemNamed(name string) bool {
	return utils.FindItem(g.inventory, name) >= 0
}
