package chaos

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Profile is the on-disk YAML form of a chaos configuration, letting test
// suites share seeded fault plans:
//
//	rate: 0.2
//	delay_ms: 5
//	seed: 789
//	faults:
//	  - "connection reset"
//	  - "deadline exceeded"
type Profile struct {
	Rate    float64  `yaml:"rate"`
	DelayMS int      `yaml:"delay_ms"`
	Seed    int64    `yaml:"seed"`
	Faults  []string `yaml:"faults"`
}

// LoadProfile reads a YAML chaos profile from disk and converts it into a
// Config. Each fault entry becomes an error carrying the listed message.
func LoadProfile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading chaos profile: %w", err)
	}
	return ParseProfile(data)
}

// ParseProfile converts raw YAML profile bytes into a Config.
func ParseProfile(data []byte) (Config, error) {
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Config{}, fmt.Errorf("parsing chaos profile: %w", err)
	}

	cfg := Config{
		Rate:  p.Rate,
		Delay: time.Duration(p.DelayMS) * time.Millisecond,
		Seed:  p.Seed,
	}
	for _, msg := range p.Faults {
		cfg.Faults = append(cfg.Faults, errors.New(msg))
	}
	return cfg, nil
}
