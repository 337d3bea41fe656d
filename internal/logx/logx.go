// Package logx configures the structured logger shared by the commands.
package logx

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// ParseLevel converts a level name such as "debug" or "warn" into a
// slog.Level.
func ParseLevel(name string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(name))); err != nil {
		return slog.LevelInfo, fmt.Errorf("logx: unknown level %q", name)
	}
	return l, nil
}

// New returns a text logger writing to w at the given level and installs it
// as the slog default.
func New(w io.Writer, level string) (*slog.Logger, error) {
	l, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: l}))
	slog.SetDefault(logger)
	return logger, nil
}
