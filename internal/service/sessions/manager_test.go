package sessions

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/LittleLemon-Booking/pkg/simulation/simulationtest"
)

func TestManager_CreateAndGet(t *testing.T) {
	f := newFixture(t, &simulationtest.Latency{})
	m := NewManager(f.deps, time.Hour)

	s := m.Create()
	got, err := m.Get(s.ID())
	require.NoError(t, err)
	assert.Same(t, s, got)
	assert.Equal(t, 1, m.Len())
	assert.Equal(t, 1, f.counter.opened)

	_, err = m.Get("missing")
	require.ErrorIs(t, err, ErrSessionNotFound)
}

func TestManager_GetOrCreate(t *testing.T) {
	f := newFixture(t, &simulationtest.Latency{})
	m := NewManager(f.deps, time.Hour)

	first, created := m.GetOrCreate("")
	assert.True(t, created)

	again, created := m.GetOrCreate(first.ID())
	assert.False(t, created)
	assert.Same(t, first, again)

	other, created := m.GetOrCreate("expired-id")
	assert.True(t, created)
	assert.NotEqual(t, first.ID(), other.ID())
}

func TestManager_Sweep(t *testing.T) {
	f := newFixture(t, &simulationtest.Latency{})
	m := NewManager(f.deps, 30*time.Minute)

	stale := m.Create()
	f.clock.Advance(20 * time.Minute)
	fresh := m.Create()
	f.clock.Advance(15 * time.Minute)

	assert.Equal(t, 1, m.Sweep())

	_, err := m.Get(stale.ID())
	require.ErrorIs(t, err, ErrSessionNotFound)
	_, err = m.Get(fresh.ID())
	require.NoError(t, err)
	assert.Equal(t, 1, f.counter.closed)
}

func TestManager_SweepDisabled(t *testing.T) {
	f := newFixture(t, &simulationtest.Latency{})
	m := NewManager(f.deps, 0)

	m.Create()
	f.clock.Advance(24 * time.Hour)

	assert.Zero(t, m.Sweep())
	assert.Equal(t, 1, m.Len())
}

func TestManager_RunJanitorStopsOnCancel(t *testing.T) {
	f := newFixture(t, &simulationtest.Latency{})
	m := NewManager(f.deps, time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		m.RunJanitor(ctx, 10*time.Millisecond)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("janitor did not stop")
	}
}
