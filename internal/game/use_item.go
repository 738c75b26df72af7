package game

import (
	"context"

	"github.com/osse101/Mansion_Go/internal/domain"
	"github.com/osse101/Mansion_Go/internal/logger"
	"github.com/osse101/Mansion_Go/internal/utils"
)

// Use applies an item's effect. Items in the room shadow same-named items in
// the inventory.
func (g *Game) Use(ctx context.Context, name string) (string, error) {
	log := logger.FromContext(ctx)

	item := utils.FindFirst(name, g.current.Items, g.inventory)
	if item == nil || !item.Usable() {
		return "", domain.ErrNotUsable
	}

	handler := g.handlers.GetHandler(item.Effect)
	if handler == nil {
		log.Warn("No handler for effect", "item", item.Name, "effect", item.Effect)
		return "", domain.ErrNotUsable
	}

	message, err := handler.Handle(ctx, g, item)
	if err != nil {
		log.Error("Handler error", "error", err, "item", item.Name)
		return "", err
	}

	log.Debug(LogMsgItemUsed, "item", item.Name, "effect", item.Effect)
	return message, nil
}
