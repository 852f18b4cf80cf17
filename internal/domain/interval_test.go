package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Barbershop-BookingService/pkg/types"
)

// minutes упрощает запись интервалов в тестах
func minutes(h, m int) int {
	return h*60 + m
}

func TestInterval_Overlaps(t *testing.T) {
	// Существующая запись 16:00-16:45
	existing := Interval{Start: minutes(16, 0), End: minutes(16, 45)}

	tests := []struct {
		name      string
		candidate Interval
		want      bool
	}{
		{
			name:      "ends exactly at existing start",
			candidate: Interval{Start: minutes(15, 15), End: minutes(16, 0)},
			want:      false,
		},
		{
			name:      "starts exactly at existing end",
			candidate: Interval{Start: minutes(16, 45), End: minutes(17, 30)},
			want:      false,
		},
		{
			name:      "overlaps the start",
			candidate: Interval{Start: minutes(15, 30), End: minutes(16, 15)},
			want:      true,
		},
		{
			name:      "overlaps the end",
			candidate: Interval{Start: minutes(16, 30), End: minutes(17, 15)},
			want:      true,
		},
		{
			name:      "identical interval",
			candidate: Interval{Start: minutes(16, 0), End: minutes(16, 45)},
			want:      true,
		},
		{
			name:      "fully inside existing",
			candidate: Interval{Start: minutes(16, 10), End: minutes(16, 30)},
			want:      true,
		},
		{
			name:      "fully contains existing",
			candidate: Interval{Start: minutes(15, 0), End: minutes(18, 0)},
			want:      true,
		},
		{
			name:      "completely before",
			candidate: Interval{Start: minutes(10, 0), End: minutes(11, 0)},
			want:      false,
		},
		{
			name:      "completely after",
			candidate: Interval{Start: minutes(18, 0), End: minutes(19, 0)},
			want:      false,
		},
		{
			name:      "zero-duration point strictly inside",
			candidate: Interval{Start: minutes(16, 20), End: minutes(16, 20)},
			want:      true,
		},
		{
			name:      "zero-duration point at start boundary",
			candidate: Interval{Start: minutes(16, 0), End: minutes(16, 0)},
			want:      false,
		},
		{
			name:      "zero-duration point at end boundary",
			candidate: Interval{Start: minutes(16, 45), End: minutes(16, 45)},
			want:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.candidate.Overlaps(existing))

			// Тест пересечения коммутативен
			assert.Equal(t, tt.candidate.Overlaps(existing), existing.Overlaps(tt.candidate),
				"overlap check must be symmetric")
		})
	}
}

func TestNewInterval(t *testing.T) {
	interval, err := NewInterval(types.TimeString("09:30"), 45)
	require.NoError(t, err)
	assert.Equal(t, Interval{Start: minutes(9, 30), End: minutes(10, 15)}, interval)

	_, err = NewInterval(types.TimeString("bad"), 30)
	require.Error(t, err)
}

func TestInterval_String(t *testing.T) {
	interval := Interval{Start: minutes(9, 5), End: minutes(10, 0)}
	assert.Equal(t, "09:05-10:00", interval.String())
}

func TestFindConflict(t *testing.T) {
	appointments := []*Appointment{
		{StartTime: "10:00", DurationMinutes: 30},
		{StartTime: "12:00", DurationMinutes: 60},
		{StartTime: "16:00", DurationMinutes: 45},
	}

	t.Run("no conflict between appointments", func(t *testing.T) {
		candidate := Interval{Start: minutes(10, 30), End: minutes(11, 30)}
		_, found := FindConflict(candidate, appointments)
		assert.False(t, found)
	})

	t.Run("returns the busy interval", func(t *testing.T) {
		candidate := Interval{Start: minutes(12, 30), End: minutes(13, 30)}
		busy, found := FindConflict(candidate, appointments)
		require.True(t, found)
		assert.Equal(t, Interval{Start: minutes(12, 0), End: minutes(13, 0)}, busy)
	})

	t.Run("empty day never conflicts", func(t *testing.T) {
		candidate := Interval{Start: minutes(10, 0), End: minutes(11, 0)}
		_, found := FindConflict(candidate, nil)
		assert.False(t, found)
	})

	t.Run("result does not depend on order", func(t *testing.T) {
		reversed := []*Appointment{appointments[2], appointments[1], appointments[0]}
		candidate := Interval{Start: minutes(16, 30), End: minutes(17, 0)}

		_, foundForward := FindConflict(candidate, appointments)
		_, foundReversed := FindConflict(candidate, reversed)
		assert.Equal(t, foundForward, foundReversed)
		assert.True(t, foundForward)
	})

	t.Run("skips appointments with invalid start time", func(t *testing.T) {
		broken := []*Appointment{
			{StartTime: "oops", DurationMinutes: 30},
			{StartTime: "10:00", DurationMinutes: 30},
		}
		candidate := Interval{Start: minutes(10, 0), End: minutes(10, 30)}
		busy, found := FindConflict(candidate, broken)
		require.True(t, found)
		assert.Equal(t, Interval{Start: minutes(10, 0), End: minutes(10, 30)}, busy)
	})
}

func TestAppointment_EndTime(t *testing.T) {
	appointment := &Appointment{StartTime: "16:00", DurationMinutes: 45}
	endTime, err := appointment.EndTime()
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("16:45"), endTime)
}

func TestAppointment_BelongsTo(t *testing.T) {
	appointment := &Appointment{ClientID: 42}
	assert.True(t, appointment.BelongsTo(42))
	assert.False(t, appointment.BelongsTo(7))
}
