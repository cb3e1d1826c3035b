package monitor

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"pingwatch/internal/probe"
	"pingwatch/internal/snapshot"
)

// PlaceholderTarget is the single entry shown when no targets are configured.
const PlaceholderTarget = "no targets configured"

// ProbeFunc executes one reachability check. It must not fail; every error
// condition maps to an unreachable Outcome.
type ProbeFunc func(ctx context.Context, t probe.Target) probe.Outcome

// Event records a confirmed UP<->DOWN transition for one target.
type Event struct {
	Target string
	Up     bool
}

// Coordinator runs one full monitoring pass: probe fan-out, debouncing,
// aggregate health, and transition diffing against the prior snapshot.
type Coordinator struct {
	probe    ProbeFunc
	debounce *Debouncer
	workers  int
	logger   *zap.Logger
}

func NewCoordinator(probeFn ProbeFunc, debounce *Debouncer, workers int, logger *zap.Logger) *Coordinator {
	if workers <= 0 {
		workers = 4
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Coordinator{
		probe:    probeFn,
		debounce: debounce,
		workers:  workers,
		logger:   logger,
	}
}

// Run executes one cycle over targets, mutating streaks in place. Result
// order follows the target list regardless of probe completion order. Events
// are only produced once a prior real cycle exists as a baseline, and never
// for the placeholder entry.
func (c *Coordinator) Run(ctx context.Context, targets []probe.Target, prior snapshot.Snapshot, streaks Streaks) (snapshot.Snapshot, []Event) {
	snap := snapshot.Snapshot{
		At:    time.Now(),
		AllUp: true,
		Cycle: prior.Cycle + 1,
	}

	if len(targets) == 0 {
		snap.Results = []snapshot.Status{
			{Target: PlaceholderTarget, Up: true, Label: "-"},
		}
		for host := range streaks {
			delete(streaks, host)
		}
		return snap, nil
	}

	outcomes := make([]probe.Outcome, len(targets))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.workers)
	for i, t := range targets {
		i, t := i, t
		g.Go(func() error {
			outcomes[i] = c.probe(gctx, t)
			return nil
		})
	}
	_ = g.Wait() // probes never return errors

	priorUp := make(map[string]bool, len(prior.Results))
	if !prior.First {
		for _, st := range prior.Results {
			priorUp[st.Target] = st.Up
		}
	}

	results := make([]snapshot.Status, 0, len(targets))
	var events []Event
	notified := make(map[string]struct{})

	for _, out := range outcomes {
		st := c.debounce.Apply(streaks, out)
		if !st.Up {
			snap.AllUp = false
		}
		results = append(results, st)

		if prior.First {
			continue
		}
		if _, dup := notified[st.Target]; dup {
			continue
		}
		prev, seen := priorUp[st.Target]
		if !seen || prev != st.Up {
			events = append(events, Event{Target: st.Target, Up: st.Up})
			notified[st.Target] = struct{}{}
		}
	}
	snap.Results = results

	active := make(map[string]struct{}, len(results))
	for _, st := range results {
		active[st.Target] = struct{}{}
	}
	for host := range streaks {
		if _, ok := active[host]; !ok {
			delete(streaks, host)
		}
	}

	return snap, events
}
