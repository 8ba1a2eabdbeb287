package log

import (
	"context"
	"io"
	"os"
	"strings"
	"time"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/rs/zerolog"
)

// InitLogger is the initializer for the logger dependency.
type InitLogger struct {
	Level  string `config:"LOG_LEVEL" default:"info"`
	Pretty bool   `config:"LOG_PRETTY" default:"false"`
}

// Initialize registers the logger in the dependency container.
func (il InitLogger) Initialize(ctx context.Context) (context.Context, error) {
	logger := NewLogger(os.Stdout, il.Level, il.Pretty)
	depend.Register(&logger)
	return ctx, nil
}

// NewLogger creates a structured logger. Unknown levels fall back to info.
func NewLogger(out io.Writer, level string, pretty bool) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	if pretty {
		out = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.RFC3339,
		}
	}

	return zerolog.New(out).
		Level(lvl).
		With().
		Timestamp().
		Str("service", "samvaad").
		Logger()
}
