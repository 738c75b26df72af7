package game

import (
	"context"
	"fmt"

	"github.com/osse101/Mansion_Go/internal/domain"
	"github.com/osse101/Mansion_Go/internal/logger"
	"github.com/osse101/Mansion_Go/internal/metrics"
)

// EffectHandler applies one item effect to the game
type EffectHandler interface {
	CanHandle(effect domain.Effect) bool
	Handle(ctx context.Context, g *Game, item *domain.Item) (string, error)
}

// HandlerRegistry manages effect handlers
type HandlerRegistry struct {
	handlers []EffectHandler
}

// NewHandlerRegistry creates a registry with every effect handler registered
func NewHandlerRegistry() *HandlerRegistry {
	return &HandlerRegistry{
		handlers: []EffectHandler{
			&LeverHandler{},
			&ChestHandler{},
		},
	}
}

// GetHandler returns the handler for the given effect, or nil if none found
func (r *HandlerRegistry) GetHandler(effect domain.Effect) EffectHandler {
	for _, h := range r.handlers {
		if h.CanHandle(effect) {
			return h
		}
	}
	return nil
}

// LeverHandler opens the hidden passage once
type LeverHandler struct{}

func (h *LeverHandler) CanHandle(effect domain.Effect) bool {
	return effect == domain.EffectPullLever
}

func (h *LeverHandler) Handle(ctx context.Context, g *Game, item *domain.Item) (string, error) {
	if g.leverPulled {
		metrics.PuzzleEventsTotal.WithLabelValues(metrics.PuzzleLever, metrics.PuzzleRepeated).Inc()
		return MsgLeverAlreadyDone, nil
	}

	from, ok := g.rooms[domain.HiddenPassageFrom]
	if !ok {
		return "", fmt.Errorf("%w: '%s'", domain.ErrUnknownRoom, domain.HiddenPassageFrom)
	}

	g.leverPulled = true
	from.Connect(domain.HiddenPassageDirection, domain.HiddenPassageTo)

	metrics.PuzzleEventsTotal.WithLabelValues(metrics.PuzzleLever, metrics.PuzzleSolved).Inc()
	logger.FromContext(ctx).Info(LogMsgLeverPulled, "from", from.Name, "to", domain.HiddenPassageTo)
	return MsgLeverPulled, nil
}

// ChestHandler opens the chest when the player carries the Old Key and
// drops the Old Scroll into the current room
type ChestHandler struct{}

func (h *ChestHandler) CanHandle(effect domain.Effect) bool {
	return effect == domain.EffectOpenChest
}

func (h *ChestHandler) Handle(ctx context.Context, g *Game, item *domain.Item) (string, error) {
	if g.chestOpened {
		metrics.PuzzleEventsTotal.WithLabelValues(metrics.PuzzleChest, metrics.PuzzleRepeated).Inc()
		return MsgChestAlreadyOpen, nil
	}

	if !g.hasItemNamed(domain.ItemNameOldKey) {
		metrics.PuzzleEventsTotal.WithLabelValues(metrics.PuzzleChest, metrics.PuzzleBlocked).Inc()
		return MsgChestLocked, nil
	}

	scroll, ok := g.catalog.New(domain.KindOldScroll)
	if !ok {
		scroll = &domain.Item{
			Kind:        domain.KindOldScroll,
			Name:        fallbackScrollName,
			Description: fallbackScrollDetail,
		}
	}

	g.chestOpened = true
	g.current.Items = append(g.current.Items, scroll)

	metrics.PuzzleEventsTotal.WithLabelValues(metrics.PuzzleChest, metrics.PuzzleSolved).Inc()
	logger.FromContext(ctx).Info(LogMsgChestOpened, "room", g.current.Name, "reward", scroll.Name)
	return MsgChestOpened, nil
}
