package logging

import (
	"os"
	"sync"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

var (
	globalLogger log.Logger
	loggerInit   sync.Once
)

func GlobalLogger() log.Logger {
	loggerInit.Do(func() {
		globalLogger = NewLogger()
	})
	return globalLogger
}

// NewLogger builds the JSON logger used across the bot. LOG_LEVEL selects the
// minimum level (debug, info, warn, error); anything else means info.
func NewLogger() log.Logger {
	logger := log.NewJSONLogger(os.Stderr)
	logger = log.With(logger, "caller", log.DefaultCaller, "ts", log.DefaultTimestamp)
	return level.NewFilter(logger, levelOption(os.Getenv("LOG_LEVEL")))
}

func levelOption(name string) level.Option {
	switch name {
	case "debug":
		return level.AllowDebug()
	case "warn":
		return level.AllowWarn()
	case "error":
		return level.AllowError()
	default:
		return level.AllowInfo()
	}
}
