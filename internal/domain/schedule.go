package domain

import (
	"time"

	"github.com/m04kA/Barbershop-BookingService/pkg/types"
)

// ScheduleDay represents the salon working hours for one weekday.
// На каждый день недели существует не больше одной записи (уникальный ключ
// по weekday); отсутствующая или неактивная запись означает выходной
type ScheduleDay struct {
	ID       int64
	Weekday  time.Weekday
	OpensAt  types.TimeString
	ClosesAt types.TimeString
	Active   bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsOpen returns true if the salon works on this day
func (d *ScheduleDay) IsOpen() bool {
	return d != nil && d.Active
}

// Validate проверяет инвариант рабочего дня: открытие строго раньше закрытия
func (d *ScheduleDay) Validate() error {
	if err := d.OpensAt.Validate(); err != nil {
		return err
	}
	if err := d.ClosesAt.Validate(); err != nil {
		return err
	}
	if !d.OpensAt.IsBefore(d.ClosesAt) {
		return ErrInvalidWorkingHours
	}
	return nil
}
