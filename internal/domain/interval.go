package domain

import (
	"fmt"

	"github.com/m04kA/Barbershop-BookingService/pkg/types"
)

// Interval полуинтервал времени внутри одного дня, в минутах от полуночи.
// Start включительно, End исключительно: записи "встык" не конфликтуют
type Interval struct {
	Start int
	End   int
}

// NewInterval строит интервал от времени начала и длительности в минутах
func NewInterval(start types.TimeString, durationMinutes int) (Interval, error) {
	startMin, err := start.MinutesFromMidnight()
	if err != nil {
		return Interval{}, err
	}
	return Interval{Start: startMin, End: startMin + durationMinutes}, nil
}

// Overlaps проверяет пересечение двух полуинтервалов.
// Пересечение есть, только если начало одного СТРОГО раньше конца другого
// И конец СТРОГО позже начала. Граничные случаи (конец одного == начало
// другого) пересечением не считаются.
//
// Вырожденный интервал нулевой длительности схлопывается в точку и
// конфликтует, только когда точка лежит строго внутри другого интервала
func (i Interval) Overlaps(other Interval) bool {
	return i.Start < other.End && i.End > other.Start
}

// StartTime возвращает время начала интервала
func (i Interval) StartTime() types.TimeString {
	ts, err := types.FromMinutes(i.Start)
	if err != nil {
		return ""
	}
	return ts
}

// EndTime возвращает время конца интервала
func (i Interval) EndTime() types.TimeString {
	ts, err := types.FromMinutes(i.End)
	if err != nil {
		return ""
	}
	return ts
}

// String форматирует интервал как "HH:MM-HH:MM"
func (i Interval) String() string {
	return fmt.Sprintf("%02d:%02d-%02d:%02d", i.Start/60, i.Start%60, i.End/60, i.End%60)
}

// FindConflict ищет первую запись, интервал которой пересекается с candidate.
// Порядок записей на результат не влияет (тест пересечения коммутативен);
// проверка останавливается на первом найденном конфликте.
// Записи с некорректным временем начала пропускаются
func FindConflict(candidate Interval, appointments []*Appointment) (Interval, bool) {
	for _, appointment := range appointments {
		existing, err := appointment.Interval()
		if err != nil {
			continue
		}
		if candidate.Overlaps(existing) {
			return existing, true
		}
	}
	return Interval{}, false
}
