package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// ParseLevel resolves debug, info, warn or error to a slog level. The empty
// string selects warn.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "", "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelWarn, fmt.Errorf("unknown log level %q", s)
	}
}

// Setup installs a text handler writing to w as the default slog logger.
// verbose forces debug level.
func Setup(w io.Writer, level string, verbose bool) (*slog.Logger, error) {
	lvl, err := ParseLevel(level)
	if verbose {
		lvl, err = slog.LevelDebug, nil
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: lvl,
	})
	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger, err
}
