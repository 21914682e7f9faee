// Package logger owns the console's process logger.
//
// main calls Init once with the configured level; services never reach for
// the package directly but receive a child from Component at wiring time,
// so every entry carries service=<name> and component=<subsystem>.
package logger

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

const defaultService = "console"

// Options controls how Init builds the process logger.
type Options struct {
	// Level is one of trace, debug, info, warn (or warning), error.
	// Anything else falls back to info.
	Level string
	// Pretty switches from JSON lines to zerolog's console writer.
	Pretty bool
	// Output defaults to os.Stdout.
	Output io.Writer
	// Service defaults to "console".
	Service string
}

var (
	mu   sync.Mutex
	root *zerolog.Logger
)

// Init builds the process logger on the first call and returns it. Later
// calls return the logger built first and ignore opts.
func Init(opts Options) zerolog.Logger {
	mu.Lock()
	defer mu.Unlock()
	if root != nil {
		return *root
	}

	zerolog.TimeFieldFormat = time.RFC3339Nano
	lvl := parseLevel(opts.Level)
	zerolog.SetGlobalLevel(lvl)

	service := opts.Service
	if service == "" {
		service = defaultService
	}

	l := zerolog.New(writer(opts)).
		Level(lvl).
		With().
		Timestamp().
		Str("service", service).
		Logger()
	root = &l
	return l
}

// Component returns a child of the process logger tagged component=name,
// or a disabled logger when Init has not run (tests wire services with it).
func Component(name string) zerolog.Logger {
	mu.Lock()
	defer mu.Unlock()
	if root == nil {
		return zerolog.Nop()
	}
	return root.With().Str("component", name).Logger()
}

// Reset forgets the process logger. Tests only.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	root = nil
}

func writer(opts Options) io.Writer {
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}
	if opts.Pretty {
		return zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen}
	}
	return out
}

func parseLevel(s string) zerolog.Level {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "warning" {
		s = "warn"
	}
	switch lvl, err := zerolog.ParseLevel(s); {
	case err != nil, lvl == zerolog.NoLevel, lvl > zerolog.ErrorLevel:
		return zerolog.InfoLevel
	default:
		return lvl
	}
}
