package probe

import "strings"

// Kind says how a target gets checked.
type Kind int

const (
	// KindHost is a bare hostname or IP, checked with an ICMP echo.
	KindHost Kind = iota
	// KindEndpoint is an http:// or https:// URL, checked with an HTTP request.
	KindEndpoint
)

// Target is a single monitored endpoint, classified once at load time so the
// rest of the pipeline never sniffs URL prefixes.
type Target struct {
	Name string
	Kind Kind
}

// Outcome is the raw result of one probe. Label is a short human-readable
// diagnostic (latency, HTTP status, or an error tag) and is never empty.
type Outcome struct {
	Target    string
	Reachable bool
	Label     string
}

// Classify trims raw and classifies it. ok is false for entries that are
// empty after trimming; callers drop those silently.
func Classify(raw string) (Target, bool) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return Target{}, false
	}

	kind := KindHost
	if strings.HasPrefix(name, "http://") || strings.HasPrefix(name, "https://") {
		kind = KindEndpoint
	}
	return Target{Name: name, Kind: kind}, true
}

// ClassifyAll classifies a raw target list, preserving order and dropping
// invalid entries.
func ClassifyAll(raw []string) []Target {
	out := make([]Target, 0, len(raw))
	for _, r := range raw {
		if t, ok := Classify(r); ok {
			out = append(out, t)
		}
	}
	return out
}
