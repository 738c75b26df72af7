package world

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Mansion_Go/internal/domain"
)

func validContent() *Content {
	return &Content{
		Version:   "1.0",
		StartRoom: "Hall",
		Items: []ItemDef{
			{Kind: "key", Name: "Key", Description: "A key."},
			{Kind: "lever", Name: "Lever", Description: "A lever.", Effect: domain.EffectPullLever},
		},
		Rooms: []RoomDef{
			{Name: "Hall", Description: "A hall.", Exits: map[domain.Direction]string{domain.North: "Study"}, Items: []string{"key"}},
			{Name: "Study", Description: "A study.", Items: []string{"lever"}},
		},
	}
}

func TestLoad_DefaultContent(t *testing.T) {
	content, err := NewLoader().Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, domain.RoomFoyer, content.StartRoom)
	assert.Len(t, content.Rooms, 4)

	byName := make(map[string]RoomDef)
	for _, room := range content.Rooms {
		byName[room.Name] = room
	}
	assert.Len(t, byName[domain.RoomFoyer].Items, 11)
	assert.Len(t, byName[domain.RoomLibrary].Items, 12)
	assert.Contains(t, byName[domain.RoomLibrary].Items, domain.KindLever)
	assert.Contains(t, byName[domain.RoomDiningHall].Items, domain.KindChest)
	assert.Equal(t, []string{domain.KindOldScroll}, byName[domain.RoomSecretRoom].Items)
	assert.Empty(t, byName[domain.RoomSecretRoom].Exits)
}

func TestLoadBytes_SchemaFailure(t *testing.T) {
	_, err := NewLoader().LoadBytes(context.Background(), []byte(`{"version":"1.0"}`))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidContent)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(c *Content)
		contains string
	}{
		{
			name:     "duplicate kind",
			mutate:   func(c *Content) { c.Items = append(c.Items, ItemDef{Kind: "key", Name: "Other Key"}) },
			contains: "duplicate item kind 'key'",
		},
		{
			name:     "duplicate room",
			mutate:   func(c *Content) { c.Rooms = append(c.Rooms, RoomDef{Name: "Hall"}) },
			contains: "duplicate room 'Hall'",
		},
		{
			name:     "exit to unknown room",
			mutate:   func(c *Content) { c.Rooms[1].Exits = map[domain.Direction]string{domain.Up: "Attic"} },
			contains: "unknown room 'Attic'",
		},
		{
			name:     "unknown item kind",
			mutate:   func(c *Content) { c.Rooms[0].Items = append(c.Rooms[0].Items, "sword") },
			contains: "unknown item kind 'sword'",
		},
		{
			name:     "unknown effect",
			mutate:   func(c *Content) { c.Items[0].Effect = "explode" },
			contains: "unknown effect 'explode'",
		},
		{
			name:     "missing start room",
			mutate:   func(c *Content) { c.StartRoom = "Cellar" },
			contains: "start room 'Cellar'",
		},
		{
			name:     "no rooms",
			mutate:   func(c *Content) { c.Rooms = nil },
			contains: ErrMsgNoRoomsDefined,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content := validContent()
			tt.mutate(content)

			err := NewLoader().Validate(content)

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidContent)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}

	t.Run("valid content", func(t *testing.T) {
		assert.NoError(t, NewLoader().Validate(validContent()))
	})

	t.Run("nil content", func(t *testing.T) {
		assert.ErrorIs(t, NewLoader().Validate(nil), domain.ErrInvalidContent)
	})
}

func TestBuild(t *testing.T) {
	content := validContent()

	w := Build(content)

	require.Contains(t, w.Rooms, "Hall")
	assert.Equal(t, "Hall", w.StartRoom)
	assert.Equal(t, []string{"Hall", "Study"}, w.RoomOrder)
	assert.Equal(t, []string{"Key"}, w.Rooms["Hall"].ItemNames())
	target, ok := w.Rooms["Hall"].ExitTo(domain.North)
	assert.True(t, ok)
	assert.Equal(t, "Study", target)
	assert.Equal(t, domain.EffectPullLever, w.Rooms["Study"].Items[0].Effect)

	t.Run("builds are independent", func(t *testing.T) {
		other := Build(content)
		other.Rooms["Hall"].Items = nil
		other.Rooms["Hall"].Connect(domain.Down, "Study")

		assert.Len(t, w.Rooms["Hall"].Items, 1)
		_, ok := w.Rooms["Hall"].ExitTo(domain.Down)
		assert.False(t, ok)
	})
}

func TestCatalog(t *testing.T) {
	catalog := NewCatalog(validContent())

	t.Run("new by kind returns fresh instances", func(t *testing.T) {
		a, ok := catalog.New("key")
		require.True(t, ok)
		b, _ := catalog.New("key")
		assert.NotSame(t, a, b)
		assert.Equal(t, *a, *b)
	})

	t.Run("new by name ignores case", func(t *testing.T) {
		item, ok := catalog.NewByName("LEVER")
		require.True(t, ok)
		assert.Equal(t, "lever", item.Kind)
		assert.Equal(t, domain.EffectPullLever, item.Effect)
	})

	t.Run("unknown", func(t *testing.T) {
		_, ok := catalog.New("sword")
		assert.False(t, ok)
		_, ok = catalog.NewByName("Sword")
		assert.False(t, ok)
	})
}
