package config

// Environment names
const (
	EnvDev         = "dev"
	EnvDevelopment = "development"
	EnvProduction  = "prod"
)

// Validation error formats
const (
	ErrFmtInvalidConfig = "invalid configuration: %s"
	ErrFmtFieldRule     = "%s failed '%s' (got %v)"
)

// Warning messages
const (
	WarnFmtSaveDirMissing    = "SAVE_FILE directory %s does not exist - saving will fail until it is created"
	WarnFmtMetricsDirMissing = "METRICS_FILE directory %s does not exist - metrics will not be written"
	WarnLogDirEmpty          = "LOG_DIR is empty - logs are discarded"
)
