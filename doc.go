/*
Package mockforge is a configurable test-double runtime: it dispatches calls
against substitute implementations, matches them to configured behaviors,
records every attempt, and answers count-based assertions afterwards.

Substitute types are generated externally; each generated member forwards to
Dispatch with a stable member identity and maps the returned tuple onto its
declared results. Everything else — configuring outcomes, injecting faults,
verifying interactions — happens against the Mock engine directly.

# Setup and dispatch

	m, err := mockforge.New(mockforge.Config{Name: "calculator"})
	m.Setup("Calculator.Add", 1, 1).Return(2)

	values, err := m.Dispatch("Calculator.Add", 1, 1) // [2], nil

Arguments may be constants (compared by structural equality) or matchers
from the match package. Overlapping setups are resolved most-recently
-registered first, so later configuration overrides earlier.

In Loose mode (the default) a dispatch with no matching setup falls through
to the default value provider; in Strict mode it fails with ErrNoSetup
naming the member signature.

Sequential outcomes come from SetupSequence:

	m.SetupSequence("Counter.Next").Return(1).Return(2).Return(3)
	// dispatches yield 1, 2, 3, 3, 3, ...

# Verification

Every dispatch attempt is logged before resolution, so strict misses and
injected faults remain observable:

	err := m.Verify("Calculator.Add", mockforge.Exactly(1), 1, 1)
	err = m.VerifyGet("Name", mockforge.Never())

# Fault injection

ConfigureChaos wraps dispatch with a seeded fault and latency injector; the
same seed and call sequence reproduce the same trigger pattern. See the
chaos package.

# Properties

Property accessors are two synthetic members (Getter(p), Setter(p)) so reads
and writes configure and verify independently. SetupProperty and
SetupAllProperties provide stateful backing.

Mocks are not safe for unsynchronized concurrent use; the supported pattern
is a single writer per instance. The only process-wide shared state is the
recursive-mock factory registry in the defaults package.
*/
package mockforge
