package config

import (
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
)

// Settings are process-environment overrides for engine defaults. They let a
// CI job flip every mock in a suite without touching test code.
type Settings struct {
	// Mode selects the default behavior mode for new mocks: "loose" or
	// "strict".
	Mode string `env:"MOCKFORGE_MODE" envDefault:"loose"`

	// LogLevel sets the default engine log level for mocks constructed
	// without an explicit logger.
	LogLevel string `env:"MOCKFORGE_LOG_LEVEL" envDefault:""`

	// ChaosDisabled suppresses every configured chaos policy. Useful for
	// bisecting failures that only reproduce with injection enabled.
	ChaosDisabled bool `env:"MOCKFORGE_CHAOS_DISABLED"`
}

var (
	once    sync.Once
	cached  Settings
	loadErr error
)

// Load parses settings from the environment once and caches the result for
// the life of the process.
func Load() (Settings, error) {
	once.Do(func() {
		cached, loadErr = Parse()
	})
	return cached, loadErr
}

// Parse reads settings from the current environment without caching.
func Parse() (Settings, error) {
	var s Settings
	if err := env.Parse(&s); err != nil {
		return Settings{}, fmt.Errorf("parsing engine settings: %w", err)
	}
	return s, nil
}
