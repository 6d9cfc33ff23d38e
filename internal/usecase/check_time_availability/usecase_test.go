package check_time_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/LittleLemon-Booking/internal/domain"
	"github.com/m04kA/LittleLemon-Booking/pkg/logger"
	"github.com/m04kA/LittleLemon-Booking/pkg/simulation/simulationtest"
)

func TestUseCase_Execute(t *testing.T) {
	tests := []struct {
		name          string
		date          string
		time          string
		draw          float64
		wantAvailable bool
		wantErr       error
	}{
		{name: "weekend slot available", date: "2024-01-13", time: "20:00", draw: 0.5, wantAvailable: true},
		{name: "weekday slot available", date: "2024-01-16", time: "19:00", draw: 0.5, wantAvailable: true},
		{name: "weekday late slot closed", date: "2024-01-16", time: "22:00", draw: 0.99, wantAvailable: false},
		{name: "random unavailability", date: "2024-01-13", time: "20:00", draw: 0.05, wantAvailable: false},
		{name: "special early slot", date: "2024-12-24", time: "16:00", draw: 0.5, wantAvailable: true},
		{name: "early slot missing on weekday", date: "2024-01-16", time: "16:00", wantErr: ErrTimeSlotNotFound},
		{name: "late slot missing on weekend", date: "2024-01-13", time: "22:30", wantErr: ErrTimeSlotNotFound},
		{name: "unknown format", date: "2024-01-13", time: "7pm", wantErr: ErrTimeSlotNotFound},
		{name: "invalid date uses weekday table", date: "not-a-date", time: "17:30", draw: 0.5, wantAvailable: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			latency := &simulationtest.Latency{}
			uc := NewUseCase(latency, simulationtest.NewRandom(tt.draw), nil, logger.NewNop())

			resp, err := uc.Execute(context.Background(), &Request{Date: tt.date, Time: tt.time})
			assert.Equal(t, []time.Duration{domain.SlotCheckLatency}, latency.Waits())

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, resp)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.date, resp.Date)
			assert.Equal(t, tt.time, resp.Time)
			assert.Equal(t, tt.wantAvailable, resp.Available)
		})
	}
}
