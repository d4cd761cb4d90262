package chaos

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"
)

var (
	// ErrInvalidRate is returned when the failure rate falls outside [0, 1].
	ErrInvalidRate = errors.New("failure rate must be between 0 and 1")

	// ErrEmptyFaultPool is returned when a non-zero failure rate is configured
	// without any faults to inject.
	ErrEmptyFaultPool = errors.New("fault pool is empty")
)

// Config describes a chaos policy.
type Config struct {
	// Rate is the probability in [0, 1] that a dispatch raises an injected
	// fault instead of resolving normally.
	Rate float64

	// Faults is the pool of errors the policy selects from when it triggers.
	Faults []error

	// Delay blocks every dispatch for a fixed duration before the trigger
	// draw. The wait is synchronous on the calling goroutine.
	Delay time.Duration

	// Seed initializes the policy-owned pseudo-random sequence. The same seed
	// and the same call sequence reproduce the same trigger pattern and the
	// same trigger count across runs and processes.
	Seed int64
}

// Stats is a read-only snapshot of policy counters.
type Stats struct {
	// TotalInvocations counts every dispatch evaluated by the policy.
	TotalInvocations uint64

	// ChaosTriggeredCount counts dispatches that raised an injected fault.
	ChaosTriggeredCount uint64
}

// Policy injects faults and latency into mock dispatch. Each policy owns its
// own seeded generator so reproducibility never depends on process-wide
// generator state.
type Policy struct {
	rate   float64
	faults []error
	delay  time.Duration

	mu  sync.Mutex // guards rng
	rng *rand.Rand

	total     atomic.Uint64
	triggered atomic.Uint64
}

// New validates the configuration and creates a policy.
func New(config Config) (*Policy, error) {
	if config.Rate < 0 || config.Rate > 1 {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidRate, config.Rate)
	}
	if config.Rate > 0 && len(config.Faults) == 0 {
		return nil, ErrEmptyFaultPool
	}
	return &Policy{
		rate:   config.Rate,
		faults: append([]error(nil), config.Faults...),
		delay:  config.Delay,
		rng:    rand.New(rand.NewSource(config.Seed)),
	}, nil
}

// Evaluate runs the policy for one dispatch: it counts the invocation, blocks
// for the configured delay, and draws from the seeded sequence. It returns
// the injected fault when the draw falls below the failure rate and nil
// otherwise. Fault selection uses the same seeded sequence, so the full
// trigger pattern is reproducible.
func (p *Policy) Evaluate() error {
	p.total.Add(1)

	if p.delay > 0 {
		time.Sleep(p.delay)
	}

	p.mu.Lock()
	triggered := p.rng.Float64() < p.rate
	var fault error
	if triggered {
		fault = p.faults[p.rng.Intn(len(p.faults))]
	}
	p.mu.Unlock()

	if !triggered {
		return nil
	}
	p.triggered.Add(1)
	return fault
}

// Stats returns the current counter values.
func (p *Policy) Stats() Stats {
	return Stats{
		TotalInvocations:    p.total.Load(),
		ChaosTriggeredCount: p.triggered.Load(),
	}
}
