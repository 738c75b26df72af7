package bootstrap

import (
	"context"
	"os"

	"github.com/osse101/Mansion_Go/internal/config"
	"github.com/osse101/Mansion_Go/internal/logger"
	"github.com/osse101/Mansion_Go/internal/metrics"
)

// Shutdown flushes what the session produced: the metrics textfile (when
// configured) and the log file. Errors are logged and never stop the sequence.
func Shutdown(ctx context.Context, cfg *config.Config, logFile *os.File) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgShuttingDown)

	if cfg.MetricsFile != "" {
		if err := metrics.WriteTextfile(cfg.MetricsFile); err != nil {
			log.Error(LogMsgMetricsFailed, "path", cfg.MetricsFile, "error", err)
		} else {
			log.Info(LogMsgMetricsWritten, "path", cfg.MetricsFile)
		}
	}

	if logFile != nil {
		_ = logFile.Close()
	}
}
