package probe

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Prober executes a single reachability check per target. It holds no
// per-target state, so one instance is shared by all concurrent checks.
type Prober struct {
	client     *http.Client
	attempts   int
	retryDelay time.Duration
	logger     *zap.Logger

	// runPing is swapped out in tests.
	runPing func(ctx context.Context, host string) ([]byte, error)
}

type ProberConfig struct {
	PingAttempts   int           // echo attempts per cycle, default 3
	PingRetryDelay time.Duration // pause between failed attempts, default 500ms
}

func NewProber(client *http.Client, cfg ProberConfig, logger *zap.Logger) *Prober {
	if cfg.PingAttempts <= 0 {
		cfg.PingAttempts = 3
	}
	if cfg.PingRetryDelay <= 0 {
		cfg.PingRetryDelay = 500 * time.Millisecond
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Prober{
		client:     client,
		attempts:   cfg.PingAttempts,
		retryDelay: cfg.PingRetryDelay,
		logger:     logger,
		runPing:    runSystemPing,
	}
}

// Probe checks one target. It never returns an error: every failure mode of
// the underlying mechanism maps to an unreachable Outcome with a diagnostic
// label, so a bad target can't abort the cycle.
func (p *Prober) Probe(ctx context.Context, t Target) Outcome {
	var (
		up    bool
		label string
	)

	switch t.Kind {
	case KindEndpoint:
		up, label = p.checkEndpoint(ctx, t.Name)
	default:
		up, label = p.checkHost(ctx, t.Name)
	}

	return Outcome{Target: t.Name, Reachable: up, Label: label}
}
