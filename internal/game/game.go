package game

import (
	"fmt"
	"sort"

	"github.com/osse101/Mansion_Go/internal/domain"
	"github.com/osse101/Mansion_Go/internal/savegame"
	"github.com/osse101/Mansion_Go/internal/world"
)

// Options tunes a new game
type Options struct {
	InventoryLimit int
}

// Game owns the whole mutable state of one play session: the room graph,
// the player's position and inventory and the puzzle flags. It is driven by
// a single interpreter loop and is not safe for concurrent use.
type Game struct {
	rooms          map[string]*domain.Room
	roomOrder      []string
	current        *domain.Room
	inventory      []*domain.Item
	inventoryLimit int

	leverPulled bool
	chestOpened bool

	catalog  *world.Catalog
	store    savegame.Store
	handlers *HandlerRegistry
}

// New starts a game in the world's start room with an empty inventory
func New(w *world.World, store savegame.Store, opts Options) (*Game, error) {
	start, ok := w.Rooms[w.StartRoom]
	if !ok {
		return nil, fmt.Errorf("%w: start room '%s'", domain.ErrUnknownRoom, w.StartRoom)
	}

	limit := opts.InventoryLimit
	if limit <= 0 {
		limit = domain.DefaultInventoryLimit
	}

	order := w.RoomOrder
	if len(order) != len(w.Rooms) {
		order = make([]string, 0, len(w.Rooms))
		for name := range w.Rooms {
			order = append(order, name)
		}
		sort.Strings(order)
	}

	return &Game{
		rooms:          w.Rooms,
		roomOrder:      order,
		current:        start,
		inventory:      []*domain.Item{},
		inventoryLimit: limit,
		catalog:        w.Catalog,
		store:          store,
		handlers:       NewHandlerRegistry(),
	}, nil
}

// CurrentRoom returns the room the player is in
func (g *Game) CurrentRoom() *domain.Room {
	return g.current
}

// Room looks a room up by name
func (g *Game) Room(name string) (*domain.Room, bool) {
	room, ok := g.rooms[name]
	return room, ok
}

// Inventory returns the carried items in order
func (g *Game) Inventory() []*domain.Item {
	out := make([]*domain.Item, len(g.inventory))
	copy(out, g.inventory)
	return out
}

// InventoryLimit returns how many items the player can carry
func (g *Game) InventoryLimit() int {
	return g.inventoryLimit
}

// LeverPulled reports whether the hidden passage has been opened
func (g *Game) LeverPulled() bool {
	return g.leverPulled
}

// ChestOpened reports whether the chest has been unlocked
func (g *Game) ChestOpened() bool {
	return g.chestOpened
}
