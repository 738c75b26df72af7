package game

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/osse101/Mansion_Go/internal/domain"
	"github.com/osse101/Mansion_Go/internal/logger"
	"github.com/osse101/Mansion_Go/internal/metrics"
	"github.com/osse101/Mansion_Go/internal/utils"
)

// Snapshot captures the whole game state in its save form
func (g *Game) Snapshot() *domain.SaveState {
	rooms := make(map[string][]domain.ItemRecord, len(g.rooms))
	for name, room := range g.rooms {
		rooms[name] = domain.RecordsOf(room.Items)
	}

	return &domain.SaveState{
		Version:     domain.SaveStateVersion,
		CurrentRoom: g.current.Name,
		Inventory:   domain.RecordsOf(g.inventory),
		Rooms:       rooms,
		LeverPulled: g.leverPulled,
		ChestOpened: g.chestOpened,
	}
}

// Save writes a snapshot to the store
func (g *Game) Save(ctx context.Context) (string, error) {
	if err := g.store.Save(ctx, g.Snapshot()); err != nil {
		metrics.SaveOperationsTotal.WithLabelValues(metrics.OperationSave, metrics.ResultError).Inc()
		logger.FromContext(ctx).Error(LogMsgSaveFailed, "error", err)
		return "", fmt.Errorf("%w: %w", domain.ErrSaveFailed, err)
	}

	metrics.SaveOperationsTotal.WithLabelValues(metrics.OperationSave, metrics.ResultOK).Inc()
	return MsgGameSaved, nil
}

// Load replaces the live state with the stored snapshot. The snapshot is
// resolved completely before anything is swapped in, so a rejected save
// leaves the game exactly as it was.
func (g *Game) Load(ctx context.Context) (string, error) {
	log := logger.FromContext(ctx)

	state, err := g.store.Load(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNoSave) {
			metrics.SaveOperationsTotal.WithLabelValues(metrics.OperationLoad, metrics.ResultRejected).Inc()
			return "", err
		}
		metrics.SaveOperationsTotal.WithLabelValues(metrics.OperationLoad, metrics.ResultError).Inc()
		log.Warn(LogMsgLoadRejected, "error", err)
		if !errors.Is(err, domain.ErrCorruptSave) {
			err = fmt.Errorf("%w: %w", domain.ErrCorruptSave, err)
		}
		return "", err
	}

	restored, err := g.resolve(log, state)
	if err != nil {
		metrics.SaveOperationsTotal.WithLabelValues(metrics.OperationLoad, metrics.ResultError).Inc()
		log.Warn(LogMsgLoadRejected, "error", err)
		return "", err
	}

	g.apply(restored)
	metrics.SaveOperationsTotal.WithLabelValues(metrics.OperationLoad, metrics.ResultOK).Inc()
	log.Info(LogMsgStateRestored, "room", g.current.Name, "carried", len(g.inventory),
		"lever_pulled", g.leverPulled, "chest_opened", g.chestOpened)

	return MsgGameLoaded + "\n" + g.current.Describe(), nil
}

type restoredState struct {
	current     *domain.Room
	inventory   []*domain.Item
	roomItems   map[string][]*domain.Item
	leverPulled bool
	chestOpened bool
}

func (g *Game) resolve(log *slog.Logger, state *domain.SaveState) (*restoredState, error) {
	current, ok := g.rooms[state.CurrentRoom]
	if !ok {
		return nil, fmt.Errorf("%w: %w: current room '%s'", domain.ErrCorruptSave, domain.ErrUnknownRoom, state.CurrentRoom)
	}

	restored := &restoredState{
		current:     current,
		inventory:   make([]*domain.Item, 0, len(state.Inventory)),
		roomItems:   make(map[string][]*domain.Item, len(state.Rooms)),
		leverPulled: state.LeverPulled,
		chestOpened: state.ChestOpened,
	}

	for _, rec := range state.Inventory {
		restored.inventory = append(restored.inventory, g.resolveItem(log, rec))
	}
	if len(restored.inventory) > g.inventoryLimit {
		log.Warn(LogMsgInventoryOverCap, "carried", len(restored.inventory), "limit", g.inventoryLimit)
	}

	for name, records := range state.Rooms {
		if _, ok := g.rooms[name]; !ok {
			return nil, fmt.Errorf("%w: %w: '%s'", domain.ErrCorruptSave, domain.ErrUnknownRoom, name)
		}
		items := make([]*domain.Item, 0, len(records))
		for _, rec := range records {
			items = append(items, g.resolveItem(log, rec))
		}
		restored.roomItems[name] = items
	}

	return restored, nil
}

// resolveItem turns a saved record back into an item. A known kind wins;
// otherwise the name is matched against live items (rooms before the
// inventory), then the catalog, and anything still unmatched becomes a
// placeholder.
func (g *Game) resolveItem(log *slog.Logger, rec domain.ItemRecord) *domain.Item {
	if rec.Kind != "" {
		if item, ok := g.catalog.New(rec.Kind); ok {
			return item
		}
		log.Warn(LogMsgUnknownItemKind, "kind", rec.Kind, "name", rec.Name)
	}

	if item := g.findLive(rec.Name); item != nil {
		return item.Clone()
	}

	if item, ok := g.catalog.NewByName(rec.Name); ok {
		return item
	}

	log.Warn(LogMsgPlaceholderItem, "name", rec.Name)
	return &domain.Item{
		Name:        rec.Name,
		Description: domain.PlaceholderDescription,
	}
}

// findLive searches the rooms in content order, then the inventory
func (g *Game) findLive(name string) *domain.Item {
	lists := make([][]*domain.Item, 0, len(g.roomOrder)+1)
	for _, roomName := range g.roomOrder {
		lists = append(lists, g.rooms[roomName].Items)
	}
	lists = append(lists, g.inventory)
	return utils.FindFirst(name, lists...)
}

func (g *Game) apply(r *restoredState) {
	g.current = r.current
	g.inventory = r.inventory
	g.leverPulled = r.leverPulled
	g.chestOpened = r.chestOpened

	// Rooms the save does not list keep their current items
	for name, items := range r.roomItems {
		g.rooms[name].Items = items
	}

	from, ok := g.rooms[domain.HiddenPassageFrom]
	if !ok {
		return
	}
	if g.leverPulled {
		from.Connect(domain.HiddenPassageDirection, domain.HiddenPassageTo)
	} else if target, ok := from.ExitTo(domain.HiddenPassageDirection); ok && target == domain.HiddenPassageTo {
		from.Disconnect(domain.HiddenPassageDirection)
	}
}
