package simulation

import (
	"fmt"
	"io"
	"strings"

	golog "github.com/tochemey/goakt/v3/log"
)

// ParseLogLevel maps a config level name onto the actor system log level.
func ParseLogLevel(level string) (golog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return golog.DebugLevel, nil
	case "", "info":
		return golog.InfoLevel, nil
	case "warn", "warning":
		return golog.WarningLevel, nil
	case "error":
		return golog.ErrorLevel, nil
	default:
		return golog.InvalidLevel, fmt.Errorf("unknown log level %q", level)
	}
}

// NewLogger builds the logger shared by the actor system and the flock actor.
func NewLogger(level string, w io.Writer) (golog.Logger, error) {
	lvl, err := ParseLogLevel(level)
	if err != nil {
		return nil, err
	}
	return golog.New(lvl, w), nil
}
