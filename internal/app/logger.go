package app

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Log output formats.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// parseLogLevel accepts the slog level names in any case, with an optional
// offset such as "debug+2". An empty string means info.
func parseLogLevel(s string) (slog.Level, error) {
	if s == "" {
		return slog.LevelInfo, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("invalid log-level %q: must be 'debug', 'info', 'warn', or 'error'", s)
	}
	return level, nil
}

// parseLogFormat normalizes a log format name. An empty string means text.
func parseLogFormat(s string) (string, error) {
	switch f := strings.ToLower(s); f {
	case "", LogFormatText:
		return LogFormatText, nil
	case LogFormatJSON:
		return f, nil
	}
	return "", fmt.Errorf("invalid log-format %q: must be 'text' or 'json'", s)
}

// newLogger creates the slog.Logger of one App. It does not set the global
// logger, so several Apps can run side by side in tests.
func newLogger(levelStr, formatStr string, w io.Writer) (*slog.Logger, error) {
	level, err := parseLogLevel(levelStr)
	if err != nil {
		return nil, err
	}
	format, err := parseLogFormat(formatStr)
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: level}
	if format == LogFormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return slog.New(slog.NewTextHandler(w, opts)), nil
}
