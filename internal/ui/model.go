package ui

import (
	"fmt"
	"time"

	"pingwatch/internal/snapshot"
)

const AppName = "Pingwatch"

// IconColor is the tray indicator color derived from the latest snapshot.
type IconColor string

const (
	ColorYellow IconColor = "yellow" // first cycle pending
	ColorGreen  IconColor = "green"  // every target effectively up
	ColorRed    IconColor = "red"    // at least one target down
)

func Color(s snapshot.Snapshot) IconColor {
	switch {
	case s.Cycle == 0:
		return ColorYellow
	case s.AllUp:
		return ColorGreen
	default:
		return ColorRed
	}
}

func Title(s snapshot.Snapshot, now time.Time) string {
	if s.Cycle == 0 {
		return AppName + " ..."
	}
	mins := int(now.Sub(s.At).Minutes())
	if s.AllUp {
		return fmt.Sprintf("%s ✓ (%dm)", AppName, mins)
	}
	return fmt.Sprintf("%s ⚠ (%dm)", AppName, mins)
}

func Tooltip(s snapshot.Snapshot) string {
	switch {
	case s.Cycle == 0:
		return "Starting..."
	case s.AllUp:
		return fmt.Sprintf("Online - %d targets monitored", len(s.Results))
	default:
		return "⚠️ OFFLINE DETECTED"
	}
}

// MenuLines renders the per-target menu: a relative last-check header
// followed by one "<indicator> <target> (<label>)" line per result.
func MenuLines(s snapshot.Snapshot, now time.Time) []string {
	lines := make([]string, 0, len(s.Results)+1)
	lines = append(lines, lastCheckLine(s, now))

	for _, st := range s.Results {
		indicator := "🟢"
		if !st.Up {
			indicator = "🔴"
		}
		lines = append(lines, fmt.Sprintf("%s %s (%s)", indicator, st.Target, st.Label))
	}
	return lines
}

func lastCheckLine(s snapshot.Snapshot, now time.Time) string {
	if s.Cycle == 0 {
		return "Waiting for first check..."
	}
	elapsed := now.Sub(s.At)
	mins := int(elapsed.Minutes())
	secs := int(elapsed.Seconds()) % 60
	if mins > 0 {
		return fmt.Sprintf("Last check: %dm %ds ago", mins, secs)
	}
	return fmt.Sprintf("Last check: %ds ago", secs)
}
