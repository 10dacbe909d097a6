package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"
)

var level slog.LevelVar

func parseLevel(s string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, true
	case "", "info":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

// Init installs the default slog logger writing to stdout.
// Unknown levels fall back to info.
func Init(lvl string) {
	InitWriter(os.Stdout, lvl)
}

// InitWriter is Init with an explicit destination.
func InitWriter(w io.Writer, lvl string) {
	parsed, ok := parseLevel(lvl)
	level.Set(parsed)

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: &level,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			switch a.Key {
			case slog.TimeKey:
				return slog.String(slog.TimeKey, a.Value.Time().Format(time.TimeOnly))
			case slog.LevelKey:
				if l, ok := a.Value.Any().(slog.Level); ok {
					return slog.String(slog.LevelKey, strings.ToUpper(l.String()))
				}
				return slog.String(slog.LevelKey, strings.ToUpper(a.Value.String()))
			default:
				return a
			}
		},
	})

	slog.SetDefault(slog.New(handler))
	if !ok {
		slog.Warn("unknown log level, using info", "level", lvl)
	}
	slog.Debug("logger initialized", "level", strings.ToUpper(parsed.String()))
}
