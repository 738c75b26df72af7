package world

import (
	"github.com/osse101/Mansion_Go/internal/domain"
	"github.com/osse101/Mansion_Go/internal/naming"
)

// Catalog holds every item definition and creates fresh instances from them.
type Catalog struct {
	defs     map[string]ItemDef
	resolver naming.Resolver
}

// NewCatalog indexes the content's item definitions by kind and by name.
func NewCatalog(content *Content) *Catalog {
	c := &Catalog{
		defs:     make(map[string]ItemDef, len(content.Items)),
		resolver: naming.NewResolver(),
	}
	for _, def := range content.Items {
		c.defs[def.Kind] = def
		c.resolver.RegisterItem(def.Kind, def.Name)
	}
	return c
}

// New creates a fresh item of the given kind.
func (c *Catalog) New(kind string) (*domain.Item, bool) {
	def, ok := c.defs[kind]
	if !ok {
		return nil, false
	}
	return &domain.Item{
		Kind:        def.Kind,
		Name:        def.Name,
		Description: def.Description,
		Effect:      def.Effect,
	}, true
}

// NewByName creates a fresh item whose definition has the given name (any case).
func (c *Catalog) NewByName(name string) (*domain.Item, bool) {
	kind, ok := c.resolver.ResolveName(name)
	if !ok {
		return nil, false
	}
	return c.New(kind)
}
