package get_available_slots

import (
	"time"

	"github.com/m04kA/Barbershop-BookingService/internal/domain"
	"github.com/m04kA/Barbershop-BookingService/pkg/types"
)

// generateSlots генерирует доступные слоты для записи на услугу.
// Чистая функция от входов: два вызова с одинаковым состоянием дают
// одинаковый результат в одинаковом порядке.
//
// Алгоритм:
//  1. Кандидаты - каждое кратное stepMinutes смещение в [открытие, закрытие).
//  2. Кандидат отбрасывается, если услуга не успевает закончиться к закрытию.
//     Интервал полуоткрытый, окончание ровно в закрытие допустимо.
//  3. Кандидат отбрасывается, если его интервал пересекается с существующей
//     записью. Снимок записей дня передается снаружи и переиспользуется для
//     всех кандидатов, поэтому сложность O(слоты * записи), без повторных
//     запросов к БД
func generateSlots(
	day *domain.ScheduleDay,
	stepMinutes int,
	durationMinutes int,
	existing []*domain.Appointment,
) ([]types.TimeString, error) {
	opensMin, err := day.OpensAt.MinutesFromMidnight()
	if err != nil {
		return nil, err
	}

	closesMin, err := day.ClosesAt.MinutesFromMidnight()
	if err != nil {
		return nil, err
	}

	slots := make([]types.TimeString, 0)

	for startMin := opensMin; startMin < closesMin; startMin += stepMinutes {
		endMin := startMin + durationMinutes

		// Услуга должна закончиться не позже закрытия
		if endMin > closesMin {
			continue
		}

		candidate := domain.Interval{Start: startMin, End: endMin}
		if _, found := domain.FindConflict(candidate, existing); found {
			continue
		}

		slot, err := types.FromMinutes(startMin)
		if err != nil {
			return nil, err
		}
		slots = append(slots, slot)
	}

	return slots, nil
}

// occupiedIntervals собирает занятые интервалы дня для отображения в UI
// Записи с некорректным временем пропускаются
func occupiedIntervals(appointments []*domain.Appointment) []OccupiedInterval {
	occupied := make([]OccupiedInterval, 0, len(appointments))

	for _, appointment := range appointments {
		endTime, err := appointment.EndTime()
		if err != nil {
			continue
		}
		occupied = append(occupied, OccupiedInterval{
			StartTime:   appointment.StartTime,
			EndTime:     endTime,
			ServiceName: appointment.ServiceName,
		})
	}

	return occupied
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
