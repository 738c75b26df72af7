package logger

// Log Level String Values
const (
	LogLevelDebug   = "debug"
	LogLevelInfo    = "info"
	LogLevelWarn    = "warn"
	LogLevelWarning = "warning"
	LogLevelError   = "error"
)

// Log Format String Values
const (
	LogFormatJSON = "json"
	LogFormatText = "text"
)

// Log Attribute Keys
const (
	AttrKeyService     = "service"
	AttrKeyVersion     = "version"
	AttrKeyEnvironment = "environment"
	AttrKeySessionID   = "session_id"
	AttrKeyCommandID   = "command_id"
)
