package payments

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderIDFormat(t *testing.T) {
	at := time.UnixMilli(1700000000000)
	gen := NewOrderIDGenerator(func() time.Time { return at })

	assert.Equal(t, "order-1700000000000", gen.Next())
}

func TestOrderIDDistinctAcrossTicks(t *testing.T) {
	at := time.UnixMilli(1700000000000)
	gen := NewOrderIDGenerator(func() time.Time {
		at = at.Add(time.Millisecond) // satu clock tick per call
		return at
	})

	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := gen.Next()
		require.NotEmpty(t, id)
		require.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestOrderIDDefaultsToWallClock(t *testing.T) {
	gen := NewOrderIDGenerator(nil)
	assert.NotEmpty(t, gen.Next())
}
