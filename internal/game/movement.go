package game

import (
	"context"
	"fmt"

	"github.com/osse101/Mansion_Go/internal/domain"
	"github.com/osse101/Mansion_Go/internal/logger"
	"github.com/osse101/Mansion_Go/internal/metrics"
)

// Look describes the current room
func (g *Game) Look(ctx context.Context) string {
	return g.current.Describe()
}

// Move follows the current room's exit in the given direction
func (g *Game) Move(ctx context.Context, dir domain.Direction) (string, error) {
	target, ok := g.current.ExitTo(dir)
	if !ok {
		return "", domain.ErrNoExit
	}

	room, ok := g.rooms[target]
	if !ok {
		return "", fmt.Errorf("%w: '%s'", domain.ErrUnknownRoom, target)
	}

	from := g.current.Name
	g.current = room
	metrics.MovesTotal.WithLabelValues(string(dir)).Inc()
	logger.FromContext(ctx).Debug(LogMsgMoved, "from", from, "to", room.Name, "direction", dir)

	return fmt.Sprintf(MsgMoveFormat, dir) + "\n" + room.Describe(), nil
}
