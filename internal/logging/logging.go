// Package logging configures the process-wide zerolog logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

type Format string

const (
	FormatConsole Format = "console"
	FormatJSON    Format = "json"
)

type Config struct {
	Level   string
	Format  Format
	Output  io.Writer
	NoColor bool
}

var (
	mu   sync.RWMutex
	root = zerolog.Nop()
)

// Init replaces the root logger. Until it is called every component logger
// discards its output.
func Init(cfg Config) error {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return err
	}
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	var w io.Writer
	switch Format(strings.ToLower(strings.TrimSpace(string(cfg.Format)))) {
	case "", FormatConsole:
		w = zerolog.ConsoleWriter{
			Out:        out,
			NoColor:    cfg.NoColor,
			TimeFormat: time.Kitchen,
		}
	case FormatJSON:
		w = out
	default:
		return fmt.Errorf("unknown log format %q", cfg.Format)
	}

	logger := zerolog.New(w).Level(level).With().Timestamp().Logger()
	mu.Lock()
	root = logger
	mu.Unlock()
	return nil
}

func ParseLevel(s string) (zerolog.Level, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return zerolog.WarnLevel, nil
	}
	level, err := zerolog.ParseLevel(s)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return level, nil
}

func Logger() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return root
}

// Component returns the root logger tagged with a component field.
func Component(name string) zerolog.Logger {
	return Logger().With().Str("component", name).Logger()
}
