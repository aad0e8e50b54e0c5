// Package cli provides shared helpers for command line setup: logging and
// configuration file handling.
package cli

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/greenbier/sportsfetch/internal/constants"
	"github.com/greenbier/sportsfetch/internal/easterntime"
)

// SetLogging configures the default logger based on the verbose flag count.
// Process log lines are timestamped in Eastern time with a 12-hour clock, the
// same calendar the daily files rotate on. With jsonLogs, a JSON handler with
// standard timestamps is used instead.
func SetLogging(level int, jsonLogs bool) {
	slogLevel := getLevel(level)

	if jsonLogs {
		slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slogLevel})))
		return
	}

	slog.SetDefault(slog.New(NewEasternTextHandler(os.Stderr, slogLevel)))
}

// NewEasternTextHandler returns a text handler whose time attribute is
// rendered as MM/DD/YYYY HH:MM:SS AM/PM in the Eastern zone, DST-aware.
func NewEasternTextHandler(w io.Writer, level slog.Level) slog.Handler {
	return slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: easternTimeAttr,
	})
}

func easternTimeAttr(groups []string, a slog.Attr) slog.Attr {
	if len(groups) > 0 || a.Key != slog.TimeKey {
		return a
	}
	t, ok := a.Value.Any().(time.Time)
	if !ok {
		return a
	}
	return slog.String(slog.TimeKey, easterntime.Timestamp(t))
}

func getLevel(level int) slog.Level {
	switch level {
	case 0:
		return constants.DefaultLogLevel
	case 1:
		return slog.LevelInfo
	default:
		return slog.LevelDebug
	}
}
