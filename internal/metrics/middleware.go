package metrics

import (
	"time"
)

// InstrumentCommand runs one player command and records its duration and
// outcome. classify maps the command's error to a result label.
func InstrumentCommand(verb string, run func() error, classify func(error) string) error {
	start := time.Now()

	err := run()

	CommandDuration.WithLabelValues(verb).Observe(time.Since(start).Seconds())
	CommandsTotal.WithLabelValues(verb, classify(err)).Inc()

	return err
}
