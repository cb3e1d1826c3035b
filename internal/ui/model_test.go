package ui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pingwatch/internal/snapshot"
)

func snapAt(allUp bool, age time.Duration, results ...snapshot.Status) (snapshot.Snapshot, time.Time) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	return snapshot.Snapshot{
		Results: results,
		At:      now.Add(-age),
		AllUp:   allUp,
		Cycle:   7,
	}, now
}

func TestColor(t *testing.T) {
	assert.Equal(t, ColorYellow, Color(snapshot.Snapshot{}), "yellow until the first cycle lands")

	s, _ := snapAt(true, time.Minute)
	assert.Equal(t, ColorGreen, Color(s))

	s, _ = snapAt(false, time.Minute)
	assert.Equal(t, ColorRed, Color(s))
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "Pingwatch ...", Title(snapshot.Snapshot{}, time.Now()))

	s, now := snapAt(true, 3*time.Minute)
	assert.Equal(t, "Pingwatch ✓ (3m)", Title(s, now))

	s, now = snapAt(false, 90*time.Second)
	assert.Equal(t, "Pingwatch ⚠ (1m)", Title(s, now))
}

func TestTooltip(t *testing.T) {
	assert.Equal(t, "Starting...", Tooltip(snapshot.Snapshot{}))

	s, _ := snapAt(true, time.Minute,
		snapshot.Status{Target: "a", Up: true, Label: "10 ms"},
		snapshot.Status{Target: "b", Up: true, Label: "HTTP 200"})
	assert.Equal(t, "Online - 2 targets monitored", Tooltip(s))

	s, _ = snapAt(false, time.Minute, snapshot.Status{Target: "a", Up: false, Label: "OFFLINE"})
	assert.Equal(t, "⚠️ OFFLINE DETECTED", Tooltip(s))
}

func TestMenuLines(t *testing.T) {
	s, now := snapAt(false, 95*time.Second,
		snapshot.Status{Target: "google.com", Up: true, Label: "12.3 ms"},
		snapshot.Status{Target: "https://site.example", Up: false, Label: "HTTP 503"})

	lines := MenuLines(s, now)

	require.Len(t, lines, 3)
	assert.Equal(t, "Last check: 1m 35s ago", lines[0])
	assert.Equal(t, "🟢 google.com (12.3 ms)", lines[1])
	assert.Equal(t, "🔴 https://site.example (HTTP 503)", lines[2])
}

func TestMenuLinesFirstCyclePending(t *testing.T) {
	lines := MenuLines(snapshot.Snapshot{}, time.Now())

	require.Len(t, lines, 1)
	assert.Equal(t, "Waiting for first check...", lines[0])
}

func TestMenuLinesRecentCheckSecondsOnly(t *testing.T) {
	s, now := snapAt(true, 42*time.Second, snapshot.Status{Target: "a", Up: true, Label: "OK"})

	lines := MenuLines(s, now)

	assert.Equal(t, "Last check: 42s ago", lines[0])
}
