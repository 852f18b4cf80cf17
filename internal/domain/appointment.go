package domain

import (
	"time"

	"github.com/m04kA/Barbershop-BookingService/pkg/types"
)

// Appointment represents a client appointment in the salon
type Appointment struct {
	ID              int64
	ClientID        int64
	ServiceID       int64
	Date            time.Time
	StartTime       types.TimeString
	DurationMinutes int

	// Denormalized service data for history
	ServiceName  string
	ServicePrice float64

	Notes *string

	CreatedAt time.Time
}

// Interval возвращает занимаемый записью интервал [начало, начало+длительность)
func (a *Appointment) Interval() (Interval, error) {
	return NewInterval(a.StartTime, a.DurationMinutes)
}

// EndTime возвращает время окончания записи
func (a *Appointment) EndTime() (types.TimeString, error) {
	return a.StartTime.AddMinutes(a.DurationMinutes)
}

// BelongsTo returns true if the appointment belongs to the given client
func (a *Appointment) BelongsTo(clientID int64) bool {
	return a.ClientID == clientID
}
