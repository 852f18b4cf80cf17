package create_appointment

import (
	"fmt"
	"time"

	"github.com/m04kA/Barbershop-BookingService/internal/domain"
	"github.com/m04kA/Barbershop-BookingService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ClientID <= 0 {
		return fmt.Errorf("%w: clientID must be positive", ErrInvalidInput)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// Проверяем, что время начала указано
	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	// Валидируем формат времени
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must not exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateWithinHours проверяет, что запись помещается в часы работы,
// и возвращает интервал-кандидат для проверки конфликтов.
// Интервал полуоткрытый, поэтому окончание ровно во время закрытия допустимо
func validateWithinHours(startTime types.TimeString, durationMinutes int, day *domain.ScheduleDay) (domain.Interval, error) {
	candidate, err := domain.NewInterval(startTime, durationMinutes)
	if err != nil {
		return domain.Interval{}, fmt.Errorf("%w: invalid start time: %v", ErrInvalidInput, err)
	}

	opensMin, err := day.OpensAt.MinutesFromMidnight()
	if err != nil {
		return domain.Interval{}, fmt.Errorf("%w: invalid schedule opens_at: %v", ErrInternal, err)
	}

	closesMin, err := day.ClosesAt.MinutesFromMidnight()
	if err != nil {
		return domain.Interval{}, fmt.Errorf("%w: invalid schedule closes_at: %v", ErrInternal, err)
	}

	if candidate.Start < opensMin || candidate.End > closesMin {
		return domain.Interval{}, &OutsideHoursError{Opens: day.OpensAt, Closes: day.ClosesAt}
	}

	return candidate, nil
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
