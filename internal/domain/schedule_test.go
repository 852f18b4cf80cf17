package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduleDay_Validate(t *testing.T) {
	tests := []struct {
		name    string
		day     ScheduleDay
		wantErr error
	}{
		{
			name: "valid working day",
			day:  ScheduleDay{Weekday: time.Monday, OpensAt: "08:00", ClosesAt: "18:00", Active: true},
		},
		{
			name:    "opens equals closes",
			day:     ScheduleDay{Weekday: time.Monday, OpensAt: "10:00", ClosesAt: "10:00", Active: true},
			wantErr: ErrInvalidWorkingHours,
		},
		{
			name:    "opens after closes",
			day:     ScheduleDay{Weekday: time.Monday, OpensAt: "18:00", ClosesAt: "08:00", Active: true},
			wantErr: ErrInvalidWorkingHours,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.day.Validate()
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}

	t.Run("invalid time format", func(t *testing.T) {
		day := ScheduleDay{Weekday: time.Monday, OpensAt: "nope", ClosesAt: "18:00", Active: true}
		require.Error(t, day.Validate())
	})
}

func TestScheduleDay_IsOpen(t *testing.T) {
	active := &ScheduleDay{Weekday: time.Monday, OpensAt: "08:00", ClosesAt: "18:00", Active: true}
	inactive := &ScheduleDay{Weekday: time.Sunday, OpensAt: "08:00", ClosesAt: "18:00", Active: false}
	var missing *ScheduleDay

	assert.True(t, active.IsOpen())
	assert.False(t, inactive.IsOpen())
	assert.False(t, missing.IsOpen())
}
