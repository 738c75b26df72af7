package naming

// Resolver maps item display names to stable catalog kinds
type Resolver interface {
	// ResolveName converts a display name (any case) to its catalog kind
	ResolveName(name string) (kind string, ok bool)

	// RegisterItem registers an item for name resolution.
	// The first registration of a name wins, matching room-order lookup.
	RegisterItem(kind, name string)
}

type resolver struct {
	// Mapping: folded display name -> kind
	nameToKind map[string]string
}

// NewResolver creates an empty naming resolver
func NewResolver() Resolver {
	return &resolver{
		nameToKind: make(map[string]string),
	}
}

// RegisterItem adds a name->kind mapping
func (r *resolver) RegisterItem(kind, name string) {
	if kind == "" || name == "" {
		return
	}
	key := Fold(name)
	if _, exists := r.nameToKind[key]; !exists {
		r.nameToKind[key] = kind
	}
}

// ResolveName converts a display name to a kind
func (r *resolver) ResolveName(name string) (string, bool) {
	kind, ok := r.nameToKind[Fold(name)]
	return kind, ok
}
