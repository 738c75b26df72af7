package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/osse101/Mansion_Go/internal/bootstrap"
	"github.com/osse101/Mansion_Go/internal/config"
	"github.com/osse101/Mansion_Go/internal/console"
	"github.com/osse101/Mansion_Go/internal/game"
	"github.com/osse101/Mansion_Go/internal/savegame"
	"github.com/osse101/Mansion_Go/internal/world"
)

func main() {
	os.Exit(run())
}

// run wires the game together and plays it on the terminal. The returned
// value is the process exit code.
func run() int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration failed: %v\n", err)
		return 1
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set up logging: %v\n", err)
		return 1
	}

	ctx := context.Background()
	defer bootstrap.Shutdown(ctx, cfg, logFile)

	content, err := world.NewLoader().Load(ctx)
	if err != nil {
		slog.Error("Failed to load world content", "error", err)
		fmt.Fprintf(os.Stderr, "Failed to load world content: %v\n", err)
		return 1
	}

	g, err := game.New(world.Build(content), savegame.NewFileStore(cfg.SaveFile), game.Options{
		InventoryLimit: cfg.InventoryLimit,
	})
	if err != nil {
		slog.Error("Failed to start game", "error", err)
		fmt.Fprintf(os.Stderr, "Failed to start game: %v\n", err)
		return 1
	}

	interp := console.NewInterpreter(g, os.Stdin, os.Stdout, console.Options{
		ClearScreen: cfg.ClearScreen,
	})
	if err := interp.Run(ctx); err != nil {
		slog.Error("Game loop stopped", "error", err)
		return 1
	}

	return 0
}
