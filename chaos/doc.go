/*
Package chaos provides a seeded probabilistic fault and latency injector that
wraps mock dispatch.

A policy carries a failure rate, a pool of injectable faults, an optional
fixed delay, and a seed for its own pseudo-random generator. Reproducibility
is the hard requirement: the same seed and the same call sequence always
produce the same trigger pattern and the same trigger count, across runs and
across processes.

	policy, err := chaos.New(chaos.Config{
	  Rate:   0.2,
	  Faults: []error{errors.New("connection reset")},
	  Seed:   789,
	})

Every dispatch through a chaos-wrapped mock calls Evaluate, which increments
TotalInvocations, blocks for the configured delay, and either returns nil or
returns one fault from the pool (incrementing ChaosTriggeredCount). Counters
are read-only externally via Stats.

Profiles let suites share fault plans as YAML files; see LoadProfile.
*/
package chaos
