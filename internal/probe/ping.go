package probe

import (
	"context"
	"errors"
	"os/exec"
	"strings"
	"time"
)

// checkHost probes a bare host with the system ping binary: up to p.attempts
// single-echo invocations with a 1s per-echo deadline, pausing p.retryDelay
// between failed attempts. The first success short-circuits.
func (p *Prober) checkHost(ctx context.Context, host string) (bool, string) {
	label := "OFFLINE"

	for attempt := 0; attempt < p.attempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return false, label
			case <-time.After(p.retryDelay):
			}
		}

		out, err := p.runPing(ctx, host)
		if err == nil {
			return true, latencyLabel(out)
		}

		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			label = "OFFLINE"
		} else {
			// ping itself could not be invoked (missing binary, permission).
			label = "error"
		}
	}

	return false, label
}

func runSystemPing(ctx context.Context, host string) ([]byte, error) {
	return exec.CommandContext(ctx, "ping", "-c", "1", "-W", "1", host).Output()
}

// latencyLabel extracts the round-trip time from ping's stdout
// ("... time=12.3 ms ...") and falls back to "OK" when it isn't there.
func latencyLabel(out []byte) string {
	s := string(out)
	if pos := strings.Index(s, "time="); pos >= 0 {
		rest := s[pos+len("time="):]
		if latency, _, ok := strings.Cut(rest, " ms"); ok {
			return strings.TrimSpace(latency) + " ms"
		}
	}
	return "OK"
}
