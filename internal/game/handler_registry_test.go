package game

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Mansion_Go/internal/domain"
)

func TestHandlerRegistry_GetHandler(t *testing.T) {
	registry := NewHandlerRegistry()

	assert.IsType(t, &LeverHandler{}, registry.GetHandler(domain.EffectPullLever))
	assert.IsType(t, &ChestHandler{}, registry.GetHandler(domain.EffectOpenChest))
	assert.Nil(t, registry.GetHandler(domain.EffectNone))
	assert.Nil(t, registry.GetHandler(domain.Effect("explode")))
}

func TestUse_NotUsable(t *testing.T) {
	g, _ := newTestGame(t)
	ctx := context.Background()

	for _, name := range []string{"Umbrella", "Nothing", "Lever"} {
		_, err := g.Use(ctx, name)
		assert.ErrorIs(t, err, domain.ErrNotUsable, name)
	}
}

func TestUse_Lever(t *testing.T) {
	g, _ := newTestGame(t)
	ctx := context.Background()
	_, err := g.Move(ctx, domain.North)
	require.NoError(t, err)

	msg, err := g.Use(ctx, "lever")
	require.NoError(t, err)
	assert.Equal(t, MsgLeverPulled, msg)
	assert.True(t, g.LeverPulled())

	target, ok := g.CurrentRoom().ExitTo(domain.East)
	require.True(t, ok)
	assert.Equal(t, domain.RoomSecretRoom, target)

	msg, err = g.Use(ctx, "Lever")
	require.NoError(t, err)
	assert.Equal(t, MsgLeverAlreadyDone, msg)
	assert.Equal(t, []domain.Direction{domain.South, domain.East}, g.CurrentRoom().ExitDirections())

	_, err = g.Move(ctx, domain.East)
	require.NoError(t, err)
	assert.Equal(t, domain.RoomSecretRoom, g.CurrentRoom().Name)
	assert.Equal(t, []string{"Old Scroll"}, g.CurrentRoom().ItemNames())
}

func TestUse_LeverFromInventory(t *testing.T) {
	g, _ := newTestGame(t)
	ctx := context.Background()
	_, err := g.Move(ctx, domain.North)
	require.NoError(t, err)
	_, err = g.Take(ctx, "Lever")
	require.NoError(t, err)
	_, err = g.Move(ctx, domain.South)
	require.NoError(t, err)

	msg, err := g.Use(ctx, "Lever")
	require.NoError(t, err)
	assert.Equal(t, MsgLeverPulled, msg)

	_, ok := mustRoom(t, g, domain.RoomLibrary).ExitTo(domain.East)
	assert.True(t, ok)
}

func TestUse_ChestWithoutKey(t *testing.T) {
	g, _ := newTestGame(t)
	ctx := context.Background()
	_, err := g.Move(ctx, domain.West)
	require.NoError(t, err)

	msg, err := g.Use(ctx, "Locked Chest")
	require.NoError(t, err)
	assert.Equal(t, MsgChestLocked, msg)
	assert.False(t, g.ChestOpened())
	assert.NotContains(t, g.CurrentRoom().ItemNames(), "Old Scroll")
}

func TestUse_ChestKeyMustBeCarried(t *testing.T) {
	g, _ := newTestGame(t)
	ctx := context.Background()
	_, err := g.Take(ctx, "Old Key")
	require.NoError(t, err)
	_, err = g.Move(ctx, domain.West)
	require.NoError(t, err)
	_, err = g.Drop(ctx, "Old Key")
	require.NoError(t, err)

	msg, err := g.Use(ctx, "Locked Chest")
	require.NoError(t, err)
	assert.Equal(t, MsgChestLocked, msg)
}

func TestUse_ChestWithKey(t *testing.T) {
	g, _ := newTestGame(t)
	ctx := context.Background()
	_, err := g.Take(ctx, "Old Key")
	require.NoError(t, err)
	_, err = g.Move(ctx, domain.West)
	require.NoError(t, err)

	msg, err := g.Use(ctx, "locked chest")
	require.NoError(t, err)
	assert.Equal(t, MsgChestOpened, msg)
	assert.True(t, g.ChestOpened())

	dining := g.CurrentRoom()
	require.Len(t, dining.Items, 6)
	scroll := dining.Items[5]
	assert.Equal(t, "Old Scroll", scroll.Name)
	assert.Equal(t, domain.KindOldScroll, scroll.Kind)
	assert.NotSame(t, mustRoom(t, g, domain.RoomSecretRoom).Items[0], scroll)

	msg, err = g.Use(ctx, "Locked Chest")
	require.NoError(t, err)
	assert.Equal(t, MsgChestAlreadyOpen, msg)
	assert.Len(t, dining.Items, 6)
}
