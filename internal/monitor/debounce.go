package monitor

import (
	"fmt"
	"math"

	"pingwatch/internal/probe"
	"pingwatch/internal/snapshot"
)

// Streaks maps a target to its count of consecutive failed probes. Entries
// are reset on any success and pruned when a target leaves the configuration.
type Streaks map[string]int

// Debouncer converts raw probe outcomes into effective statuses. A target is
// reported down only once it has failed threshold cycles in a row, so a
// single transient blip never flips the externally visible state.
type Debouncer struct {
	threshold int
}

const DefaultFailThreshold = 2

func NewDebouncer(threshold int) *Debouncer {
	if threshold <= 0 {
		threshold = DefaultFailThreshold
	}
	return &Debouncer{threshold: threshold}
}

// Apply folds one outcome into streaks and returns the effective status.
// Below the threshold a failing target still reports up, with the label
// annotated to show streak progress.
func (d *Debouncer) Apply(streaks Streaks, out probe.Outcome) snapshot.Status {
	if out.Reachable {
		streaks[out.Target] = 0
		return snapshot.Status{Target: out.Target, Up: true, Label: out.Label}
	}

	n := streaks[out.Target]
	if n < math.MaxInt {
		n++
	}
	streaks[out.Target] = n

	if n >= d.threshold {
		return snapshot.Status{Target: out.Target, Up: false, Label: out.Label}
	}
	return snapshot.Status{
		Target: out.Target,
		Up:     true,
		Label:  fmt.Sprintf("%s (fail %d/%d)", out.Label, n, d.threshold),
	}
}
