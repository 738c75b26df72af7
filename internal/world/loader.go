package world

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/osse101/Mansion_Go/internal/domain"
	"github.com/osse101/Mansion_Go/internal/logger"
	"github.com/osse101/Mansion_Go/internal/validation"
)

//go:embed content/world.json
var defaultContent []byte

// Content represents the JSON definition of the world
type Content struct {
	Version     string `json:"version"`
	Description string `json:"description"`
	StartRoom   string `json:"start_room"`

	Items []ItemDef `json:"items"`
	Rooms []RoomDef `json:"rooms"`
}

// ItemDef represents a single item definition in the JSON
type ItemDef struct {
	Kind        string        `json:"kind"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Effect      domain.Effect `json:"effect,omitempty"`
}

// RoomDef represents a room and its initial contents. Items are listed by kind.
type RoomDef struct {
	Name        string                      `json:"name"`
	Description string                      `json:"description"`
	Exits       map[domain.Direction]string `json:"exits,omitempty"`
	Items       []string                    `json:"items,omitempty"`
}

// Loader handles loading and validating world content
type Loader interface {
	Load(ctx context.Context) (*Content, error)
	LoadBytes(ctx context.Context, data []byte) (*Content, error)
	Validate(content *Content) error
}

type worldLoader struct {
	schemaValidator validation.SchemaValidator
}

// NewLoader creates a new Loader instance
func NewLoader() Loader {
	return &worldLoader{
		schemaValidator: validation.NewSchemaValidator(),
	}
}

// Load parses and validates the content shipped with the binary
func (l *worldLoader) Load(ctx context.Context) (*Content, error) {
	return l.LoadBytes(ctx, defaultContent)
}

// LoadBytes parses and validates a world definition
func (l *worldLoader) LoadBytes(ctx context.Context, data []byte) (*Content, error) {
	if err := l.schemaValidator.ValidateBytes(data, validation.WorldSchema); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidContent, err)
	}

	var content Content
	if err := json.Unmarshal(data, &content); err != nil {
		return nil, fmt.Errorf(ErrMsgParseContentFailed, err)
	}

	if err := l.Validate(&content); err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info(LogMsgContentLoaded,
		"version", content.Version,
		"rooms", len(content.Rooms),
		"items", len(content.Items))

	return &content, nil
}

// Validate checks references between rooms and items
func (l *worldLoader) Validate(content *Content) error {
	if content == nil {
		return fmt.Errorf("%w: %s", domain.ErrInvalidContent, ErrMsgContentNil)
	}
	if len(content.Items) == 0 {
		return fmt.Errorf("%w: %s", domain.ErrInvalidContent, ErrMsgNoItemsDefined)
	}
	if len(content.Rooms) == 0 {
		return fmt.Errorf("%w: %s", domain.ErrInvalidContent, ErrMsgNoRoomsDefined)
	}

	kinds := make(map[string]bool, len(content.Items))
	for i := range content.Items {
		if err := validateItemDef(i, &content.Items[i], kinds); err != nil {
			return err
		}
	}

	rooms := make(map[string]bool, len(content.Rooms))
	for i, room := range content.Rooms {
		if room.Name == "" {
			return fmt.Errorf(ErrFmtRoomAtIndex, domain.ErrInvalidContent, i)
		}
		if rooms[room.Name] {
			return fmt.Errorf(ErrFmtDuplicateRoom, domain.ErrInvalidContent, room.Name)
		}
		rooms[room.Name] = true
	}

	for _, room := range content.Rooms {
		for dir, target := range room.Exits {
			if !rooms[target] {
				return fmt.Errorf(ErrFmtUnknownExit, domain.ErrInvalidContent, room.Name, dir, target)
			}
		}
		for _, kind := range room.Items {
			if !kinds[kind] {
				return fmt.Errorf(ErrFmtUnknownItemKind, domain.ErrInvalidContent, room.Name, kind)
			}
		}
	}

	if content.StartRoom == "" {
		return fmt.Errorf("%w: %s", domain.ErrInvalidContent, ErrMsgNoStartRoom)
	}
	if !rooms[content.StartRoom] {
		return fmt.Errorf(ErrFmtUnknownStart, domain.ErrInvalidContent, content.StartRoom)
	}

	return nil
}

func validateItemDef(index int, item *ItemDef, kinds map[string]bool) error {
	if item.Kind == "" {
		return fmt.Errorf(ErrFmtItemAtIndex, domain.ErrInvalidContent, index)
	}
	if kinds[item.Kind] {
		return fmt.Errorf(ErrFmtDuplicateKind, domain.ErrInvalidContent, item.Kind)
	}
	kinds[item.Kind] = true

	if item.Name == "" {
		return fmt.Errorf(ErrFmtItemEmptyName, domain.ErrInvalidContent, item.Kind)
	}
	if !item.Effect.IsKnown() {
		return fmt.Errorf(ErrFmtUnknownEffect, domain.ErrInvalidContent, item.Kind, item.Effect)
	}
	return nil
}
