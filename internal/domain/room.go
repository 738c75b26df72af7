package domain

import (
	"fmt"
	"strings"
)

// Room is a location node. Exits are directed edges keyed by direction and
// point at other rooms by name; a reverse edge is never implied.
type Room struct {
	Name        string
	Description string
	Exits       map[Direction]string
	Items       []*Item
}

// NewRoom allocates an empty room
func NewRoom(name, description string) *Room {
	return &Room{
		Name:        name,
		Description: description,
		Exits:       make(map[Direction]string),
	}
}

// Connect adds (or replaces) the exit in the given direction.
func (r *Room) Connect(dir Direction, target string) {
	r.Exits[dir] = target
}

// Disconnect removes the exit in the given direction, if any.
func (r *Room) Disconnect(dir Direction) {
	delete(r.Exits, dir)
}

// ExitTo returns the target room name for the direction.
func (r *Room) ExitTo(dir Direction) (string, bool) {
	target, ok := r.Exits[dir]
	return target, ok
}

// ExitDirections returns the room's exits in canonical direction order.
func (r *Room) ExitDirections() []Direction {
	dirs := make([]Direction, 0, len(r.Exits))
	for _, dir := range Directions {
		if _, ok := r.Exits[dir]; ok {
			dirs = append(dirs, dir)
		}
	}
	return dirs
}

// ItemNames returns the names of the room's items in display order.
func (r *Room) ItemNames() []string {
	names := make([]string, len(r.Items))
	for i, item := range r.Items {
		names[i] = item.Name
	}
	return names
}

// Describe renders the room the way the player sees it on entering or looking.
func (r *Room) Describe() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s: %s", r.Name, r.Description)
	if len(r.Items) > 0 {
		sb.WriteString("\nYou see:")
		for _, item := range r.Items {
			fmt.Fprintf(&sb, "\n- %s", item.Name)
		}
	}
	if dirs := r.ExitDirections(); len(dirs) > 0 {
		sb.WriteString("\nExits:")
		for _, dir := range dirs {
			fmt.Fprintf(&sb, "\n- %s", dir)
		}
	}
	return sb.String()
}
