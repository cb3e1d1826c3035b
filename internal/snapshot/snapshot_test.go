package snapshot

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetBeforePublishIsZero(t *testing.T) {
	s := Get()
	assert.Equal(t, uint64(0), s.Cycle, "cycle 0 means first cycle pending")
	assert.Empty(t, s.Results)
	assert.False(t, s.First)
}

func TestPublishReplaces(t *testing.T) {
	Publish(Snapshot{Cycle: 1, AllUp: true, At: time.Now()})
	Publish(Snapshot{
		Cycle:   2,
		AllUp:   false,
		Results: []Status{{Target: "a", Up: false, Label: "OFFLINE"}},
	})

	s := Get()
	assert.Equal(t, uint64(2), s.Cycle)
	assert.False(t, s.AllUp)
	assert.Len(t, s.Results, 1)
}
