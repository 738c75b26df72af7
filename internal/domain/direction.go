package domain

// Direction names an exit out of a room
type Direction string

const (
	North Direction = "north"
	South Direction = "south"
	East  Direction = "east"
	West  Direction = "west"
	Up    Direction = "up"
	Down  Direction = "down"
)

// Directions is the canonical order used when listing exits.
var Directions = []Direction{North, South, East, West, Up, Down}
