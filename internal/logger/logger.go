// Package logger provides a thin wrapper around zerolog.Logger for the
// diagnostic channel.
//
// Diagnostics go to stderr by default so they never mix with match output on
// stdout. The Logger type embeds zerolog.Logger so the full zerolog API is
// available directly on *Logger.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Supported output formats.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Options configures the logger.
type Options struct {
	Level     string    // trace, debug, info, warn, error; default info
	Format    string    // console or json; default console
	Component string    // optional "component" field
	Writer    io.Writer // default os.Stderr
}

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

// New builds a *Logger from opt. An unknown level is an error.
func New(opt Options) (*Logger, error) {
	lvl := zerolog.InfoLevel
	if s := strings.TrimSpace(opt.Level); s != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(s))
		if err != nil {
			return nil, fmt.Errorf("log level %q: %w", opt.Level, err)
		}
		lvl = parsed
	}

	var w io.Writer = os.Stderr
	if opt.Writer != nil {
		w = opt.Writer
	}
	switch strings.ToLower(opt.Format) {
	case "", FormatConsole:
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	case FormatJSON:
	default:
		return nil, fmt.Errorf("log format %q: want %s or %s", opt.Format, FormatConsole, FormatJSON)
	}

	ctx := zerolog.New(w).Level(lvl).With().Timestamp()
	if opt.Component != "" {
		ctx = ctx.Str("component", opt.Component)
	}
	return &Logger{ctx.Logger()}, nil
}

// Nop returns a *Logger that discards all output. Intended for tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// Child returns a logger tagged with the given component name.
func (l *Logger) Child(component string) *Logger {
	return &Logger{l.With().Str("component", component).Logger()}
}
