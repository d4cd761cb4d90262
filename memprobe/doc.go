/*
Package memprobe provides allocation assertions for hot-path code under test.

Three entry points share one measurement: force a collection, snapshot the
heap, run the action, snapshot again.

	// Fails unless the action allocates exactly zero bytes.
	err := memprobe.Zero(func() { cache.Lookup(key) })

	// Fails when the action exceeds a byte budget.
	err := memprobe.AtMost(func() { enc.Encode(msg) }, 512)

	// Reports without judging, for comparison or logging.
	report := memprobe.Measure(func() { enc.Encode(msg) }, "encode")

Measurements observe process-wide heap counters, so run probes on a quiet
goroutine; background allocations are attributed to the action.
*/
package memprobe
