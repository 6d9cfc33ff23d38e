package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "evening slot", input: "19:30", want: "19:30"},
		{name: "midnight", input: "00:00", want: "00:00"},
		{name: "single digit hour", input: "7:00", wantErr: true},
		{name: "out of range", input: "25:00", wantErr: true},
		{name: "garbage", input: "ab:cd", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidTimeString)
				assert.True(t, got.IsZero())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestTimeString_AddMinutes(t *testing.T) {
	start := MustTimeString("22:00")

	next, err := start.AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, "22:30", next.String())
	assert.True(t, start.IsBefore(next))
	assert.True(t, next.IsAfter(start))

	_, err = MustTimeString("23:45").AddMinutes(30)
	require.ErrorIs(t, err, ErrTimeOverflow)

	_, err = TimeString{}.AddMinutes(30)
	require.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_FromTime(t *testing.T) {
	ts := NewTimeString(time.Date(2024, 1, 13, 17, 5, 59, 0, time.UTC))
	assert.Equal(t, "17:05", ts.String())
	assert.Equal(t, 17*60+5, ts.Minutes())
}

func TestTimeString_JSON(t *testing.T) {
	var payload struct {
		Time TimeString `json:"time"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"time":"18:30"}`), &payload))
	assert.True(t, payload.Time.Equal(MustTimeString("18:30")))

	out, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"time":"18:30"}`, string(out))

	assert.Error(t, json.Unmarshal([]byte(`{"time":"6pm"}`), &payload))
}
