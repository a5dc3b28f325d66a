// Package logging provides component-scoped zerolog loggers.
package logging

import (
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
)

var (
	mu   sync.RWMutex
	root = newRoot(os.Stderr, zerolog.InfoLevel)
)

// Setup replaces the root logger. level accepts zerolog level names
// ("debug", "info", ...); out defaults to stderr when nil.
func Setup(level string, out io.Writer) error {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		return err
	}
	if out == nil {
		out = os.Stderr
	}

	mu.Lock()
	root = newRoot(out, parsed)
	mu.Unlock()
	return nil
}

// Component returns a logger tagged with the component name.
func Component(name string) zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return root.With().Str("component", name).Logger()
}

func newRoot(out io.Writer, level zerolog.Level) zerolog.Logger {
	writer := zerolog.ConsoleWriter{Out: out}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}
