package monitor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pingwatch/internal/probe"
)

func TestDebouncerResetOnSuccess(t *testing.T) {
	d := NewDebouncer(2)
	streaks := Streaks{"host": 5}

	st := d.Apply(streaks, probe.Outcome{Target: "host", Reachable: true, Label: "12 ms"})

	assert.True(t, st.Up)
	assert.Equal(t, "12 ms", st.Label)
	assert.Equal(t, 0, streaks["host"])
}

func TestDebouncerBelowThresholdStaysUp(t *testing.T) {
	d := NewDebouncer(2)
	streaks := make(Streaks)

	st := d.Apply(streaks, probe.Outcome{Target: "host", Reachable: false, Label: "OFFLINE"})

	assert.True(t, st.Up, "single failure must not flip the visible status")
	assert.Equal(t, "OFFLINE (fail 1/2)", st.Label)
	assert.Equal(t, 1, streaks["host"])
}

func TestDebouncerThresholdBoundary(t *testing.T) {
	d := NewDebouncer(2)
	streaks := make(Streaks)
	out := probe.Outcome{Target: "host", Reachable: false, Label: "OFFLINE"}

	st := d.Apply(streaks, out)
	require.True(t, st.Up)

	st = d.Apply(streaks, out)
	assert.False(t, st.Up, "second consecutive failure crosses threshold=2")
	assert.Equal(t, "OFFLINE", st.Label, "raw label once confirmed down")
	assert.Equal(t, 2, streaks["host"])
}

func TestDebouncerFailThenSuccess(t *testing.T) {
	d := NewDebouncer(2)
	streaks := make(Streaks)

	st := d.Apply(streaks, probe.Outcome{Target: "host", Reachable: false, Label: "OFFLINE"})
	require.True(t, st.Up)

	st = d.Apply(streaks, probe.Outcome{Target: "host", Reachable: true, Label: "9 ms"})
	assert.True(t, st.Up)
	assert.Equal(t, 0, streaks["host"], "any success resets the streak to exactly 0")
}

func TestDebouncerStreakMonotonic(t *testing.T) {
	d := NewDebouncer(3)
	streaks := make(Streaks)
	out := probe.Outcome{Target: "host", Reachable: false, Label: "OFFLINE"}

	prev := 0
	for i := 0; i < 10; i++ {
		d.Apply(streaks, out)
		require.Greater(t, streaks["host"], prev-1)
		require.GreaterOrEqual(t, streaks["host"], prev)
		prev = streaks["host"]
	}
	assert.Equal(t, 10, streaks["host"])
}

func TestDebouncerLabelNeverEmpty(t *testing.T) {
	d := NewDebouncer(2)
	streaks := make(Streaks)

	for i := 0; i < 4; i++ {
		st := d.Apply(streaks, probe.Outcome{Target: "host", Reachable: false, Label: "OFFLINE"})
		assert.NotEmpty(t, st.Label)
	}
}

func TestNewDebouncerDefaultsThreshold(t *testing.T) {
	d := NewDebouncer(0)
	assert.Equal(t, DefaultFailThreshold, d.threshold)
}
