package bootstrap

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for log files (read/write for owner, read for group/others)
	LogFilePermission = 0644
)

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "session_%s.log"

	// LogFileExtension is the file extension for log files
	LogFileExtension = ".log"

	// LogFileRetentionCount is the number of older log files kept next to the new one
	LogFileRetentionCount = 9
)

// =============================================================================
// Log Messages
// =============================================================================

const (
	LogMsgLoggingInitialized = "Logging initialized"
	LogMsgStartingGame       = "Starting mansion"
	LogMsgConfigWarning      = "Configuration warning"
	LogMsgShuttingDown       = "Shutting down"
	LogMsgMetricsWritten     = "Metrics written"
	LogMsgMetricsFailed      = "Failed to write metrics"
	LogMsgDeleteLogFailed    = "Failed to delete old log file"
)
