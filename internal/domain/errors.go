package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Item errors
	ErrMsgItemNotFound   = "item not found"
	ErrMsgNotInInventory = "item not in inventory"
	ErrMsgNotUsable      = "item cannot be used"

	// Inventory errors
	ErrMsgInventoryFull = "inventory is full"

	// Movement errors
	ErrMsgNoExit      = "no exit in that direction"
	ErrMsgUnknownRoom = "unknown room"

	// Save errors
	ErrMsgNoSave      = "no save found"
	ErrMsgCorruptSave = "corrupt save"
	ErrMsgSaveFailed  = "failed to save game"

	// Content errors
	ErrMsgInvalidContent = "invalid world content"

	// Input errors
	ErrMsgUnknownCommand = "unknown command"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrItemNotFound   = errors.New(ErrMsgItemNotFound)
	ErrNotInInventory = errors.New(ErrMsgNotInInventory)
	ErrNotUsable      = errors.New(ErrMsgNotUsable)

	ErrInventoryFull = errors.New(ErrMsgInventoryFull)

	ErrNoExit      = errors.New(ErrMsgNoExit)
	ErrUnknownRoom = errors.New(ErrMsgUnknownRoom)

	ErrNoSave      = errors.New(ErrMsgNoSave)
	ErrCorruptSave = errors.New(ErrMsgCorruptSave)
	ErrSaveFailed  = errors.New(ErrMsgSaveFailed)

	ErrInvalidContent = errors.New(ErrMsgInvalidContent)

	ErrUnknownCommand = errors.New(ErrMsgUnknownCommand)
)
