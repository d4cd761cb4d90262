package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Config controls logger construction.
type Config struct {
	// Level is the minimum level to emit ("trace" through "error", or
	// "disabled"). Empty means disabled; the engine stays silent unless
	// asked.
	Level string

	// Writer receives log output. Defaults to os.Stderr.
	Writer io.Writer

	// Pretty switches to the human-readable console writer instead of JSON.
	Pretty bool
}

// New builds a zerolog logger for engine diagnostics.
func New(config Config) (zerolog.Logger, error) {
	level := config.Level
	if level == "" {
		level = "disabled"
	}

	parsed, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("parsing log level %q: %w", config.Level, err)
	}

	var w io.Writer = os.Stderr
	if config.Writer != nil {
		w = config.Writer
	}
	if config.Pretty {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	}

	return zerolog.New(w).Level(parsed).With().Timestamp().Logger(), nil
}

// Nop returns a logger that discards everything.
func Nop() zerolog.Logger {
	return zerolog.Nop()
}
