package domain

// Room names. The room set is fixed by the world content.
const (
	RoomFoyer      = "Foyer"
	RoomLibrary    = "Library"
	RoomDiningHall = "Dining Hall"
	RoomSecretRoom = "Secret Room"
)

// Item kinds and names the puzzle effects depend on
const (
	KindOldKey    = "old_key"
	KindOldScroll = "old_scroll"
	KindLever     = "lever"
	KindChest     = "locked_chest"

	ItemNameOldKey = "Old Key"
)

// The lever reveals this passage
const (
	HiddenPassageFrom      = RoomLibrary
	HiddenPassageDirection = East
	HiddenPassageTo        = RoomSecretRoom
)

// DefaultInventoryLimit is how many items the player can carry.
const DefaultInventoryLimit = 10

// PlaceholderDescription is used for items the save names but nothing defines.
const PlaceholderDescription = "An item with no detailed description."
