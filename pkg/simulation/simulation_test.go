package simulation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLatency_Scale(t *testing.T) {
	start := time.Now()
	NewLatency(0).Wait(time.Second)
	NewLatency(-3).Wait(time.Second)
	assert.Less(t, time.Since(start), 100*time.Millisecond)

	start = time.Now()
	NewLatency(0.01).Wait(time.Second)
	assert.GreaterOrEqual(t, time.Since(start), 10*time.Millisecond)
}

func TestRandom_Ranges(t *testing.T) {
	r := NewRandom()
	for i := 0; i < 1000; i++ {
		f := r.Float64()
		assert.GreaterOrEqual(t, f, 0.0)
		assert.Less(t, f, 1.0)

		n := r.IntN(36)
		assert.GreaterOrEqual(t, n, 0)
		assert.Less(t, n, 36)
	}
}
