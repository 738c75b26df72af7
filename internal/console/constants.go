package console

// Console text
const (
	MsgWelcome     = "Welcome to the adventure game!"
	Prompt         = "\n> "
	ClearScreen    = "\033[H\033[2J"
	MsgQuitPrompt  = "Are you sure you want to quit? (yes/no): "
	MsgHelpHeader  = "Available commands:"
	MsgUnexpected  = "Something went wrong."
	confirmYes     = "yes"
	argPlaceholder = " <item>"
)

// MaxLineBytes bounds one line of player input
const MaxLineBytes = 64 * 1024

// Player-facing error messages
const (
	MsgUnknownCommand = "Unknown command."
	MsgItemNotHere    = "There is no such item here."
	MsgItemNotVisible = "There is no such item here or in your inventory."
	MsgNotCarried     = "You don't have that item."
	MsgInventoryFull  = "Your inventory is full. You can't carry more items."
	MsgCannotUse      = "You can't use that."
	MsgNoExit         = "You can't go that way."
	MsgNoSave         = "No save file found."
	MsgCorruptSave    = "The save file is corrupt and could not be loaded."
	MsgSaveFailed     = "Failed to save the game."
)

// Command names
const (
	CmdLook      = "look"
	CmdInspect   = "inspect"
	CmdTake      = "take"
	CmdDrop      = "drop"
	CmdInventory = "inventory"
	CmdUse       = "use"
	CmdSave      = "save"
	CmdLoad      = "load"
	CmdHelp      = "help"
	CmdQuit      = "quit"
)

// Log messages
const (
	LogMsgSessionStarted = "Session started"
	LogMsgSessionEnded   = "Session ended"
	LogMsgEndOfInput     = "End of input, quitting"
	LogMsgCommand        = "Command processed"
	LogMsgUnexpected     = "Unexpected command error"
	LogMsgLineTooLong    = "Input line too long, discarded"
)
