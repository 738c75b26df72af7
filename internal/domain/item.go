package domain

// Effect identifies what happens when an item is used.
// The set is closed: every effect is dispatched by a registered handler.
type Effect string

const (
	EffectNone      Effect = ""
	EffectPullLever Effect = "pull_lever"
	EffectOpenChest Effect = "open_chest"
)

// KnownEffects lists every effect a handler exists for.
var KnownEffects = []Effect{EffectNone, EffectPullLever, EffectOpenChest}

// IsKnown reports whether the effect belongs to the closed set.
func (e Effect) IsKnown() bool {
	for _, known := range KnownEffects {
		if e == known {
			return true
		}
	}
	return false
}

// Item is a named, inspectable object that lives in exactly one container.
// Items are always passed by pointer so moving one between a room and the
// inventory keeps its identity.
//   - Kind: stable catalog key (e.g. "old_key"); empty for placeholder items
//   - Name: display name, matched case-insensitively
type Item struct {
	Kind        string `json:"kind,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Effect      Effect `json:"effect,omitempty"`
}

// Usable reports whether using the item does anything.
func (i *Item) Usable() bool {
	return i.Effect != EffectNone
}

// Clone returns a fresh instance with the same definition.
func (i *Item) Clone() *Item {
	c := *i
	return &c
}
