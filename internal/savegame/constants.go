package savegame

// Error formats
const (
	ErrFmtReadFailed = "failed to read save file %s: %w"
)

// Log messages
const (
	LogMsgSaved          = "Game state saved"
	LogMsgLoaded         = "Game state loaded"
	LogMsgSchemaRejected = "Save file failed schema validation"
	LogMsgStructRejected = "Save file failed field validation"
)
