package notify

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/multierr"
)

const appName = "Pingwatch"

const defaultTimeout = 5 * time.Second

type Urgency int

const (
	UrgencyNormal Urgency = iota
	UrgencyCritical
)

// Message is one user-visible alert.
type Message struct {
	Summary string
	Body    string
	Icon    string
	Urgency Urgency
	Timeout time.Duration
}

// Notifier delivers alert messages. Implementations must be safe for use
// from the monitor loop; a delivery failure is returned, never panicked.
type Notifier interface {
	Notify(ctx context.Context, m Message) error
}

// StatusChange returns the canned message for a confirmed transition:
// recovery at normal urgency, outage at critical urgency.
func StatusChange(target string, up bool) Message {
	if up {
		return Message{
			Summary: appName,
			Body:    fmt.Sprintf("✅ %s is responding again.", target),
			Icon:    "network-transmit-receive",
			Urgency: UrgencyNormal,
			Timeout: defaultTimeout,
		}
	}
	return Message{
		Summary: appName,
		Body:    fmt.Sprintf("❌ %s went OFFLINE!", target),
		Icon:    "network-error",
		Urgency: UrgencyCritical,
		Timeout: defaultTimeout,
	}
}

// Multi fans a message out to every configured sink. All sinks are attempted
// even when earlier ones fail; errors are aggregated.
type Multi []Notifier

func (m Multi) Notify(ctx context.Context, msg Message) error {
	var err error
	for _, n := range m {
		err = multierr.Append(err, n.Notify(ctx, msg))
	}
	return err
}
