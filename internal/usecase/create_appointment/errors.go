package create_appointment

import (
	"errors"
	"fmt"

	"github.com/m04kA/Barbershop-BookingService/internal/domain"
	"github.com/m04kA/Barbershop-BookingService/pkg/types"
)

// Каждый исход валидации - отдельная ошибка, чтобы вызывающая сторона
// могла показать клиенту точную причину отказа
var (
	// ErrInvalidInput возвращается при некорректных или неполных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrPastDate возвращается при попытке записаться на прошедшую дату
	ErrPastDate = errors.New("create_appointment: date is in the past")

	// ErrServiceNotFound возвращается, когда услуга не найдена в каталоге
	ErrServiceNotFound = errors.New("create_appointment: service not found")

	// ErrSalonClosed возвращается, когда салон не работает в выбранный день недели
	ErrSalonClosed = errors.New("create_appointment: salon is closed on this day")

	// ErrOutsideHours возвращается, когда запись не помещается в часы работы
	ErrOutsideHours = errors.New("create_appointment: outside working hours")

	// ErrTimeConflict возвращается, когда интервал записи пересекается с существующей
	ErrTimeConflict = errors.New("create_appointment: time conflict with existing appointment")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)

// OutsideHoursError несет границы рабочего дня, чтобы вызывающая сторона
// могла подсказать клиенту допустимое время
type OutsideHoursError struct {
	Opens  types.TimeString
	Closes types.TimeString
}

func (e *OutsideHoursError) Error() string {
	return fmt.Sprintf("%v: working hours are %s - %s", ErrOutsideHours, e.Opens, e.Closes)
}

func (e *OutsideHoursError) Unwrap() error {
	return ErrOutsideHours
}

// ConflictError несет занятый интервал, с которым пересекается запрошенное время
type ConflictError struct {
	Busy domain.Interval
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%v: occupied %s", ErrTimeConflict, e.Busy)
}

func (e *ConflictError) Unwrap() error {
	return ErrTimeConflict
}
