package bookingpage

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/LittleLemon-Booking/internal/domain"
	"github.com/m04kA/LittleLemon-Booking/internal/usecase/get_available_times"
	"github.com/m04kA/LittleLemon-Booking/pkg/logger"
	"github.com/m04kA/LittleLemon-Booking/pkg/types"
)

type stubEngine struct {
	times map[string][]domain.TimeSlot
	err   error
	calls []string
}

func (e *stubEngine) Execute(_ context.Context, req *get_available_times.Request) (*get_available_times.Response, error) {
	e.calls = append(e.calls, req.Date)
	if e.err != nil {
		return nil, e.err
	}
	return &get_available_times.Response{Date: req.Date, AvailableTimes: e.times[req.Date]}, nil
}

func slots(times ...string) []domain.TimeSlot {
	out := make([]domain.TimeSlot, len(times))
	for i, t := range times {
		out[i] = domain.TimeSlot{Time: types.MustTimeString(t), Available: true}
	}
	return out
}

func TestReduce(t *testing.T) {
	tests := []struct {
		name   string
		state  State
		action Action
		want   State
	}{
		{
			name:   "set available times clears loading",
			state:  State{IsLoading: true},
			action: SetAvailableTimes{Times: slots("17:00")},
			want:   State{AvailableTimes: slots("17:00")},
		},
		{
			name:   "set loading keeps times",
			state:  State{AvailableTimes: slots("17:00")},
			action: SetLoading{Loading: true},
			want:   State{AvailableTimes: slots("17:00"), IsLoading: true},
		},
		{
			name:   "clear times",
			state:  State{AvailableTimes: slots("17:00"), IsLoading: true},
			action: ClearTimes{},
			want:   State{AvailableTimes: []domain.TimeSlot{}},
		},
		{
			name:   "unknown action",
			state:  State{IsLoading: true},
			action: nil,
			want:   State{IsLoading: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Reduce(tt.state, tt.action))
		})
	}
}

func TestController_FindAvailableTimes(t *testing.T) {
	engine := &stubEngine{times: map[string][]domain.TimeSlot{"2024-01-13": slots("17:00", "17:30")}}
	c := NewController(engine, logger.NewNop())

	c.FindAvailableTimes(context.Background(), "2024-01-13")

	state := c.State()
	assert.False(t, state.IsLoading)
	assert.Equal(t, []string{"17:00", "17:30"}, domain.SlotTimes(state.AvailableTimes))
	assert.Equal(t, []string{"2024-01-13"}, engine.calls)
}

func TestController_FindAvailableTimes_EngineFailure(t *testing.T) {
	engine := &stubEngine{err: errors.New("boom")}
	c := NewController(engine, logger.NewNop())
	c.Dispatch(SetAvailableTimes{Times: slots("17:00")})

	c.FindAvailableTimes(context.Background(), "2024-01-13")

	state := c.State()
	assert.False(t, state.IsLoading)
	assert.Empty(t, state.AvailableTimes)
}

func TestController_FindAvailableTimes_EmptyDateClears(t *testing.T) {
	engine := &stubEngine{}
	c := NewController(engine, logger.NewNop())
	c.Dispatch(SetAvailableTimes{Times: slots("17:00")})

	c.FindAvailableTimes(context.Background(), "")

	assert.Empty(t, c.State().AvailableTimes)
	assert.Empty(t, engine.calls)
}

func TestController_BeginSetsLoading(t *testing.T) {
	c := NewController(&stubEngine{}, logger.NewNop())

	ticket := c.Begin("2024-01-13")

	assert.True(t, c.State().IsLoading)
	assert.Equal(t, "2024-01-13", ticket.Date)
}

func TestController_StaleResponseDiscarded(t *testing.T) {
	c := NewController(&stubEngine{}, logger.NewNop())

	first := c.Begin("2024-01-13")
	second := c.Begin("2024-01-14")

	// второй ответ приходит раньше первого
	require.True(t, c.Settle(second, slots("18:00")))
	require.False(t, c.Settle(first, slots("17:00")))

	state := c.State()
	assert.False(t, state.IsLoading)
	assert.Equal(t, []string{"18:00"}, domain.SlotTimes(state.AvailableTimes))
}

func TestController_ClearInvalidatesPendingFetch(t *testing.T) {
	c := NewController(&stubEngine{}, logger.NewNop())

	ticket := c.Begin("2024-01-13")
	c.Clear()

	assert.False(t, c.Settle(ticket, slots("17:00")))
	state := c.State()
	assert.Empty(t, state.AvailableTimes)
	assert.False(t, state.IsLoading)
}

func TestController_StateIsACopy(t *testing.T) {
	c := NewController(&stubEngine{}, logger.NewNop())
	c.Dispatch(SetAvailableTimes{Times: slots("17:00")})

	state := c.State()
	state.AvailableTimes[0] = domain.TimeSlot{Time: types.MustTimeString("23:00")}

	assert.Equal(t, []string{"17:00"}, domain.SlotTimes(c.State().AvailableTimes))
}
