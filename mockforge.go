package mockforge

import (
	"reflect"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mockforge-project/mockforge/chaos"
	"github.com/mockforge-project/mockforge/config"
	"github.com/mockforge-project/mockforge/defaults"
	"github.com/mockforge-project/mockforge/logging"
)

// Mode controls what happens when a dispatched call matches no setup.
type Mode int

const (
	// Loose falls through to the default value provider.
	Loose Mode = iota

	// Strict fails the dispatch with ErrNoSetup.
	Strict
)

// String returns the mode name.
func (m Mode) String() string {
	if m == Strict {
		return "strict"
	}
	return "loose"
}

// Member declares a contract member to the engine. Generated substitute
// constructors declare every member so strict-mode failures can name
// signatures, setups can be checked against the declared arity, and
// loose-mode defaults can produce typed result tuples.
type Member struct {
	// Signature is the human-readable declaration, e.g. "Add(a, b int) int".
	Signature string

	// Params is the declared parameter count. A setup whose matcher count
	// differs is permanently inapplicable.
	Params int

	// Results lists the declared result types in order. The default value
	// provider fills them when a loose-mode dispatch matches no setup.
	Results []reflect.Type
}

// Config configures a new Mock.
type Config struct {
	// Name labels the instance in logs and failure messages. Defaults to
	// "mock".
	Name string

	// Mode selects Strict or Loose behavior. When left at the zero value
	// the MOCKFORGE_MODE environment setting applies, defaulting to Loose.
	Mode Mode

	// Defaults supplies loose-mode fallback values. Defaults to
	// defaults.Empty; pass a defaults.Recursive to enable auto-mocking of
	// interface-typed results.
	Defaults defaults.Provider

	// Logger receives engine diagnostics. When nil a logger is built from
	// the MOCKFORGE_LOG_LEVEL environment setting (silent by default).
	Logger *zerolog.Logger
}

// Mock is the dispatch engine for one substitute instance: its setup
// registry, invocation log, chaos policy, and default value provider. Each
// Mock is owned by a single test goroutine; concurrent use requires external
// synchronization.
type Mock struct {
	id       uuid.UUID
	name     string
	mode     Mode
	defaults defaults.Provider
	logger   zerolog.Logger

	members map[string]Member
	setups  []*Setup
	log     []Invocation

	policy   *chaos.Policy
	chaosOff bool

	props    map[string]any
	allProps bool
}

// New creates a mock engine instance. Environment settings (see the config
// package) supply defaults for unset fields.
func New(cfg Config) (*Mock, error) {
	settings, err := config.Load()
	if err != nil {
		return nil, err
	}

	mode := cfg.Mode
	if mode == Loose && strings.EqualFold(settings.Mode, "strict") {
		mode = Strict
	}

	provider := cfg.Defaults
	if provider == nil {
		provider = defaults.Empty{}
	}

	var logger zerolog.Logger
	if cfg.Logger != nil {
		logger = *cfg.Logger
	} else {
		logger, err = logging.New(logging.Config{Level: settings.LogLevel})
		if err != nil {
			return nil, err
		}
	}

	name := cfg.Name
	if name == "" {
		name = "mock"
	}

	m := &Mock{
		id:       uuid.New(),
		name:     name,
		mode:     mode,
		defaults: provider,
		members:  make(map[string]Member),
		props:    make(map[string]any),
		chaosOff: settings.ChaosDisabled,
	}
	m.logger = logger.With().Str("mock", name).Str("mock_id", m.id.String()).Logger()
	return m, nil
}

// ID returns the unique identity of this instance.
func (m *Mock) ID() uuid.UUID { return m.id }

// Name returns the instance label.
func (m *Mock) Name() string { return m.name }

// Mode returns the behavior mode.
func (m *Mock) Mode() Mode { return m.mode }

// Declare registers member metadata, typically from a generated substitute
// constructor. Redeclaring a member replaces its metadata.
func (m *Mock) Declare(member string, meta Member) {
	m.members[member] = meta
}

// signature returns the declared signature for failure messages, falling
// back to the bare member identity.
func (m *Mock) signature(member string) string {
	if meta, ok := m.members[member]; ok && meta.Signature != "" {
		return meta.Signature
	}
	return member
}

// ConfigureChaos wraps this mock's dispatch path with a seeded fault and
// latency injector. A new configuration replaces the previous policy and
// resets its counters.
func (m *Mock) ConfigureChaos(cfg chaos.Config) error {
	policy, err := chaos.New(cfg)
	if err != nil {
		return err
	}
	m.policy = policy
	m.logger.Debug().Float64("rate", cfg.Rate).Int64("seed", cfg.Seed).Msg("chaos policy configured")
	return nil
}

// ChaosStats reports the counters of the configured policy. The second
// return is false when no policy is configured.
func (m *Mock) ChaosStats() (chaos.Stats, bool) {
	if m.policy == nil {
		return chaos.Stats{}, false
	}
	return m.policy.Stats(), true
}

// Getter returns the synthetic member identity of a property read accessor.
// Property accessors are tracked as two synthetic members so reads and
// writes configure and verify independently.
func Getter(property string) string { return "get:" + property }

// Setter returns the synthetic member identity of a property write accessor.
func Setter(property string) string { return "set:" + property }
