package monitor

import (
	"context"
	"time"

	"github.com/benbjohnson/clock"
	"go.uber.org/zap"

	"pingwatch/internal/notify"
	"pingwatch/internal/probe"
	"pingwatch/internal/snapshot"
)

// TargetSource yields the current target list at the start of each cycle.
// Implementations must not fail; a broken backing store falls back to its
// built-in defaults internally.
type TargetSource interface {
	Targets() []probe.Target
}

const DefaultInterval = 3 * time.Minute

// Loop drives the coordinator on a fixed interval. It is the only writer of
// the published snapshot and the fail-streak state; the UI reads published
// snapshots concurrently without ever blocking a cycle.
type Loop struct {
	source   TargetSource
	coord    *Coordinator
	notifier notify.Notifier
	clock    clock.Clock
	interval time.Duration
	logger   *zap.Logger
}

func NewLoop(source TargetSource, coord *Coordinator, notifier notify.Notifier, clk clock.Clock, interval time.Duration, logger *zap.Logger) *Loop {
	if clk == nil {
		clk = clock.New()
	}
	if interval <= 0 {
		interval = DefaultInterval
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loop{
		source:   source,
		coord:    coord,
		notifier: notifier,
		clock:    clk,
		interval: interval,
		logger:   logger,
	}
}

// Run cycles until ctx is cancelled. Each iteration reloads the target list,
// runs one cycle, publishes the snapshot, dispatches transition
// notifications, and sleeps for whatever is left of the interval.
func (l *Loop) Run(ctx context.Context) error {
	prior := snapshot.Snapshot{First: true}
	streaks := make(Streaks)

	for {
		start := l.clock.Now()

		snap, events := l.coord.Run(ctx, l.source.Targets(), prior, streaks)
		snapshot.Publish(snap)
		l.logger.Info("cycle complete",
			zap.Uint64("cycle", snap.Cycle),
			zap.Bool("all_up", snap.AllUp),
			zap.Int("targets", len(snap.Results)),
			zap.Int("events", len(events)))

		for _, ev := range events {
			if err := l.notifier.Notify(ctx, notify.StatusChange(ev.Target, ev.Up)); err != nil {
				l.logger.Warn("notification dispatch failed",
					zap.String("target", ev.Target), zap.Error(err))
			}
		}

		prior = snap

		wait := l.interval - l.clock.Since(start)
		if wait < 0 {
			wait = 0
		}
		timer := l.clock.Timer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}
