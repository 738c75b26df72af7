package world

import (
	"github.com/osse101/Mansion_Go/internal/domain"
)

// World is the live graph built from content: rooms with fresh item
// instances, the start room and the catalog used to mint new items.
type World struct {
	Rooms map[string]*domain.Room
	// RoomOrder lists room names in content order
	RoomOrder []string
	StartRoom string
	Catalog   *Catalog
}

// Build constructs the initial world. Each call returns independent rooms
// and items, so a second build never shares state with the first.
func Build(content *Content) *World {
	catalog := NewCatalog(content)
	rooms := make(map[string]*domain.Room, len(content.Rooms))
	order := make([]string, 0, len(content.Rooms))

	for _, def := range content.Rooms {
		room := domain.NewRoom(def.Name, def.Description)
		for dir, target := range def.Exits {
			room.Connect(dir, target)
		}
		for _, kind := range def.Items {
			item, ok := catalog.New(kind)
			if !ok {
				// Validate rejects unknown kinds
				continue
			}
			room.Items = append(room.Items, item)
		}
		rooms[def.Name] = room
		order = append(order, def.Name)
	}

	return &World{
		Rooms:     rooms,
		RoomOrder: order,
		StartRoom: content.StartRoom,
		Catalog:   catalog,
	}
}
