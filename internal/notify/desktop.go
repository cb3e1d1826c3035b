package notify

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
)

// Desktop delivers messages through the notify-send command.
type Desktop struct {
	// run is swapped out in tests.
	run func(ctx context.Context, name string, args ...string) error
}

func NewDesktop() *Desktop {
	return &Desktop{run: runCommand}
}

func runCommand(ctx context.Context, name string, args ...string) error {
	return exec.CommandContext(ctx, name, args...).Run()
}

func (d *Desktop) Notify(ctx context.Context, m Message) error {
	urgency := "normal"
	if m.Urgency == UrgencyCritical {
		urgency = "critical"
	}

	args := []string{
		"--app-name", appName,
		"--urgency", urgency,
		"--expire-time", strconv.FormatInt(m.Timeout.Milliseconds(), 10),
	}
	if m.Icon != "" {
		args = append(args, "--icon", m.Icon)
	}
	args = append(args, m.Summary, m.Body)

	if err := d.run(ctx, "notify-send", args...); err != nil {
		return fmt.Errorf("notify-send: %w", err)
	}
	return nil
}
