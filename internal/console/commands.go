package console

import (
	"context"
	"errors"

	"github.com/osse101/Mansion_Go/internal/domain"
	"github.com/osse101/Mansion_Go/internal/game"
)

// gameCommand binds a verb to a game operation
type gameCommand struct {
	name        string
	description string
	argument    bool
	run         func(ctx context.Context, arg string) (string, error)
	// messages override the shared error table for this verb
	messages map[error]string
}

func (c *gameCommand) Name() string        { return c.name }
func (c *gameCommand) Description() string { return c.description }
func (c *gameCommand) TakesArgument() bool { return c.argument }

func (c *gameCommand) Run(ctx context.Context, arg string) (string, error) {
	return c.run(ctx, arg)
}

// ErrorMessage returns the verb-specific text for err, if any
func (c *gameCommand) ErrorMessage(err error) (string, bool) {
	for target, msg := range c.messages {
		if errors.Is(err, target) {
			return msg, true
		}
	}
	return "", false
}

// NewGameRegistry registers every verb of the game
func NewGameRegistry(g *game.Game) *Registry {
	r := NewRegistry()

	r.Register(&gameCommand{
		name:        CmdLook,
		description: "Describe the current room",
		run: func(ctx context.Context, _ string) (string, error) {
			return g.Look(ctx), nil
		},
	})
	r.Register(&gameCommand{
		name:        CmdInspect,
		description: "Examine an item here or in your inventory",
		argument:    true,
		run:         g.Inspect,
		messages:    map[error]string{domain.ErrItemNotFound: MsgItemNotVisible},
	})
	r.Register(&gameCommand{
		name:        CmdTake,
		description: "Pick up an item in this room",
		argument:    true,
		run:         g.Take,
	})
	r.Register(&gameCommand{
		name:        CmdDrop,
		description: "Put down an item you are carrying",
		argument:    true,
		run:         g.Drop,
	})
	r.Register(&gameCommand{
		name:        CmdInventory,
		description: "List what you are carrying",
		run: func(ctx context.Context, _ string) (string, error) {
			return g.ShowInventory(ctx), nil
		},
	})
	r.Register(&gameCommand{
		name:        CmdUse,
		description: "Use an item here or in your inventory",
		argument:    true,
		run:         g.Use,
	})
	r.Register(&gameCommand{
		name:        CmdSave,
		description: "Save your progress",
		run: func(ctx context.Context, _ string) (string, error) {
			return g.Save(ctx)
		},
	})
	r.Register(&gameCommand{
		name:        CmdLoad,
		description: "Restore your last save",
		run: func(ctx context.Context, _ string) (string, error) {
			return g.Load(ctx)
		},
	})
	r.Register(&gameCommand{
		name:        CmdHelp,
		description: "Show this list",
		run: func(context.Context, string) (string, error) {
			return r.Help(), nil
		},
	})
	r.Register(&gameCommand{
		name:        CmdQuit,
		description: "Leave the game",
		run: func(context.Context, string) (string, error) {
			return "", errQuit
		},
	})

	for _, dir := range domain.Directions {
		dir := dir
		r.Register(&gameCommand{
			name:        string(dir),
			description: "Go " + string(dir),
			run: func(ctx context.Context, _ string) (string, error) {
				return g.Move(ctx, dir)
			},
		})
	}

	return r
}
