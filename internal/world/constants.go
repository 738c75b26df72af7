package world

// ==================== Error Messages ====================

// File operation error messages
const (
	ErrMsgParseContentFailed = "failed to parse world content: %w"
)

// Validation error messages (fragments used with error wrapping)
const (
	ErrMsgContentNil     = "content is nil"
	ErrMsgNoRoomsDefined = "no rooms defined"
	ErrMsgNoStartRoom    = "start room is not defined"
	ErrMsgNoItemsDefined = "no items defined"
)

// ==================== Format Strings for Error Construction ====================

// These format strings are used with fmt.Errorf for detailed error messages
const (
	ErrFmtDuplicateKind   = "%w: duplicate item kind '%s'"
	ErrFmtDuplicateRoom   = "%w: duplicate room '%s'"
	ErrFmtRoomAtIndex     = "%w: room at index %d has empty name"
	ErrFmtItemAtIndex     = "%w: item at index %d has empty kind"
	ErrFmtItemEmptyName   = "%w: item '%s' has empty name"
	ErrFmtUnknownEffect   = "%w: item '%s' has unknown effect '%s'"
	ErrFmtUnknownExit     = "%w: room '%s' has exit %s to unknown room '%s'"
	ErrFmtUnknownItemKind = "%w: room '%s' references unknown item kind '%s'"
	ErrFmtUnknownStart    = "%w: start room '%s' is not defined"
)

// ==================== Log Messages ====================

const (
	LogMsgContentLoaded = "World content loaded"
)
