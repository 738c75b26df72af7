package console

import (
	"errors"

	"github.com/osse101/Mansion_Go/internal/domain"
	"github.com/osse101/Mansion_Go/internal/metrics"
)

// errQuit asks the interpreter to confirm leaving the game
var errQuit = errors.New("quit requested")

// errorMessenger is implemented by commands with verb-specific error text
type errorMessenger interface {
	ErrorMessage(err error) (string, bool)
}

// errorMessages maps domain errors to what the player sees. Order matters
// only for errors that wrap more than one sentinel.
var errorMessages = []struct {
	err     error
	message string
}{
	{domain.ErrCorruptSave, MsgCorruptSave},
	{domain.ErrNoSave, MsgNoSave},
	{domain.ErrSaveFailed, MsgSaveFailed},
	{domain.ErrInventoryFull, MsgInventoryFull},
	{domain.ErrItemNotFound, MsgItemNotHere},
	{domain.ErrNotInInventory, MsgNotCarried},
	{domain.ErrNotUsable, MsgCannotUse},
	{domain.ErrNoExit, MsgNoExit},
	{domain.ErrUnknownCommand, MsgUnknownCommand},
}

// messageFor returns the player-facing text for a command error
func messageFor(cmd Command, err error) (string, bool) {
	if m, ok := cmd.(errorMessenger); ok {
		if msg, ok := m.ErrorMessage(err); ok {
			return msg, true
		}
	}
	for _, em := range errorMessages {
		if errors.Is(err, em.err) {
			return em.message, true
		}
	}
	return "", false
}

// classify maps a command error to a metrics result label
func classify(cmd Command) func(error) string {
	return func(err error) string {
		if err == nil || errors.Is(err, errQuit) {
			return metrics.ResultOK
		}
		if _, ok := messageFor(cmd, err); ok {
			return metrics.ResultRejected
		}
		return metrics.ResultError
	}
}
