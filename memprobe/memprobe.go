package memprobe

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/dustin/go-humanize"
)

// ErrAllocationBudget is returned when a measured action allocates more heap
// bytes than its budget allows.
var ErrAllocationBudget = errors.New("allocation budget exceeded")

// Report describes the heap impact of one measured action. Reports are
// produced once per probe call and never persisted.
type Report struct {
	// Label identifies the measurement.
	Label string

	// Bytes is the number of heap bytes allocated while the action ran.
	Bytes uint64

	// GCCycles is the number of garbage collection cycles completed while
	// the action ran.
	GCCycles uint32
}

// String renders the report for logs and comparisons.
func (r Report) String() string {
	return fmt.Sprintf("%s: allocated %s (%d bytes), %d GC cycle(s)", r.Label, humanize.Bytes(r.Bytes), r.Bytes, r.GCCycles)
}

// Measure runs action between two heap snapshots, quiescing collection
// activity first, and reports the allocation delta without judging it.
// Measurements assume the single-threaded usage pattern the engine supports;
// allocations from other goroutines are attributed to the action.
func Measure(action func(), label string) Report {
	var before, after runtime.MemStats

	runtime.GC()
	runtime.ReadMemStats(&before)
	action()
	runtime.ReadMemStats(&after)

	return Report{
		Label:    label,
		Bytes:    after.TotalAlloc - before.TotalAlloc,
		GCCycles: after.NumGC - before.NumGC,
	}
}

// Zero runs action and fails unless it performed no heap allocation at all.
func Zero(action func()) error {
	report := Measure(action, "zero")
	if report.Bytes != 0 {
		return fmt.Errorf("%w: expected 0 bytes, got %d", ErrAllocationBudget, report.Bytes)
	}
	return nil
}

// AtMost runs action and fails when it allocates more than maxBytes.
func AtMost(action func(), maxBytes uint64) error {
	report := Measure(action, "atmost")
	if report.Bytes > maxBytes {
		return fmt.Errorf("%w: expected at most %d bytes, got %d", ErrAllocationBudget, maxBytes, report.Bytes)
	}
	return nil
}
