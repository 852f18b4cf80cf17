package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeString
		wantErr bool
	}{
		{name: "valid morning time", input: "09:00", want: "09:00"},
		{name: "valid midnight", input: "00:00", want: "00:00"},
		{name: "valid end of day", input: "23:59", want: "23:59"},
		{name: "missing leading zero is normalized", input: "9:00", want: "09:00"},
		{name: "with seconds", input: "09:00:00", wantErr: true},
		{name: "out of range hour", input: "24:00", wantErr: true},
		{name: "out of range minute", input: "10:60", wantErr: true},
		{name: "empty string", input: "", wantErr: true},
		{name: "garbage", input: "abcde", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewTimeString(t *testing.T) {
	moment := time.Date(2025, 10, 15, 14, 5, 33, 0, time.UTC)
	assert.Equal(t, TimeString("14:05"), NewTimeString(moment))
}

func TestFromMinutes(t *testing.T) {
	tests := []struct {
		name    string
		minutes int
		want    TimeString
		wantErr bool
	}{
		{name: "midnight", minutes: 0, want: "00:00"},
		{name: "morning", minutes: 9 * 60, want: "09:00"},
		{name: "with minutes", minutes: 16*60 + 45, want: "16:45"},
		{name: "last minute of day", minutes: 23*60 + 59, want: "23:59"},
		{name: "negative", minutes: -1, wantErr: true},
		{name: "beyond day", minutes: 24 * 60, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromMinutes(tt.minutes)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_MinutesFromMidnight(t *testing.T) {
	ts := TimeString("16:45")
	minutes, err := ts.MinutesFromMidnight()
	require.NoError(t, err)
	assert.Equal(t, 16*60+45, minutes)

	_, err = TimeString("bad").MinutesFromMidnight()
	require.Error(t, err)
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts := TimeString("09:00")

	got, err := ts.AddMinutes(45)
	require.NoError(t, err)
	assert.Equal(t, TimeString("09:45"), got)

	// Переход через границу дня недопустим
	_, err = TimeString("23:30").AddMinutes(45)
	require.Error(t, err)
}

func TestTimeString_Comparison(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("10:00"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))
	assert.True(t, TimeString("18:00").IsAfter("08:00"))
}

func TestTimeString_Scan(t *testing.T) {
	tests := []struct {
		name string
		src  interface{}
		want TimeString
	}{
		{name: "postgres time with seconds", src: "10:30:00", want: "10:30"},
		{name: "plain HH:MM", src: "10:30", want: "10:30"},
		{name: "bytes", src: []byte("08:15:00"), want: "08:15"},
		{name: "time.Time", src: time.Date(2025, 1, 1, 7, 45, 0, 0, time.UTC), want: "07:45"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ts TimeString
			require.NoError(t, ts.Scan(tt.src))
			assert.Equal(t, tt.want, ts)
		})
	}

	t.Run("nil resets to zero", func(t *testing.T) {
		ts := TimeString("10:00")
		require.NoError(t, ts.Scan(nil))
		assert.True(t, ts.IsZero())
	})
}
