package game

// Player-facing messages
const (
	MsgMoveFormat        = "You move %s."
	MsgTakeFormat        = "You take the %s."
	MsgDropFormat        = "You drop the %s."
	MsgInventoryEmpty    = "You are not carrying anything."
	MsgInventoryHeader   = "You are carrying:"
	MsgInventoryLineFmt  = "- %s"
	MsgGameSaved         = "Game saved successfully."
	MsgGameLoaded        = "Game loaded successfully."
	MsgLeverPulled       = "You pull the lever. You hear a grinding sound as a hidden door opens to the east!"
	MsgLeverAlreadyDone  = "The lever has already been pulled."
	MsgChestOpened       = "You unlock the chest with the Old Key. Inside, you find an Old Scroll!"
	MsgChestAlreadyOpen  = "The chest is already open."
	MsgChestLocked       = "The chest is locked. You need a key."
	fallbackScrollName   = "Old Scroll"
	fallbackScrollDetail = "An ancient scroll detailing the history of the mansion's reclusive former owner."
)

// Log messages
const (
	LogMsgMoved            = "Player moved"
	LogMsgItemTaken        = "Item taken"
	LogMsgItemDropped      = "Item dropped"
	LogMsgItemUsed         = "Item used"
	LogMsgLeverPulled      = "Lever pulled, hidden passage opened"
	LogMsgChestOpened      = "Chest opened"
	LogMsgSaveFailed       = "Failed to save game"
	LogMsgLoadRejected     = "Save file rejected"
	LogMsgStateRestored    = "Game state restored"
	LogMsgUnknownItemKind  = "Saved item has unknown kind, resolving by name"
	LogMsgPlaceholderItem  = "Saved item has no definition, using placeholder"
	LogMsgInventoryOverCap = "Restored inventory exceeds the carry limit"
)
