package snapshot

import (
	"sync/atomic"
	"time"
)

// Status is one target's externally visible state after flap suppression.
type Status struct {
	Target string `json:"target"`
	Up     bool   `json:"up"`
	Label  string `json:"label"`
}

// Snapshot is the read-only view published after each monitoring cycle.
// Results keep the configured target order. A zero-value snapshot (Cycle 0)
// means the first cycle has not completed yet.
type Snapshot struct {
	Results []Status  `json:"results"`
	At      time.Time `json:"at"`
	AllUp   bool      `json:"all_up"`
	Cycle   uint64    `json:"cycle"`

	// First marks the pre-first-cycle baseline; transition diffing is
	// skipped against it.
	First bool `json:"-"`
}

var current atomic.Value // stores Snapshot

// Publish replaces the current snapshot.
func Publish(s Snapshot) {
	current.Store(s)
}

// Get returns the latest snapshot.
// If nothing was published yet, returns zero-value snapshot.
func Get() Snapshot {
	if v := current.Load(); v != nil {
		return v.(Snapshot)
	}
	return Snapshot{}
}
