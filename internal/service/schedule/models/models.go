package models

import (
	"fmt"
	"time"

	"github.com/m04kA/Barbershop-BookingService/internal/domain"
	"github.com/m04kA/Barbershop-BookingService/pkg/types"
)

// Request модели

// UpdateWeekRequest запрос на обновление недельного расписания
// Дни, отсутствующие в запросе, не изменяются
type UpdateWeekRequest struct {
	Days []DayUpdate `json:"days"`
}

// DayUpdate обновление расписания одного дня недели
type DayUpdate struct {
	Weekday  int    `json:"weekday"`            // 0 = воскресенье ... 6 = суббота
	OpensAt  string `json:"opensAt,omitempty"`  // "09:00", обязательно при active=true
	ClosesAt string `json:"closesAt,omitempty"` // "18:00", обязательно при active=true
	Active   bool   `json:"active"`
}

// ToDomainScheduleDay конвертирует обновление дня в domain модель
func (d *DayUpdate) ToDomainScheduleDay() (*domain.ScheduleDay, error) {
	if d.Weekday < 0 || d.Weekday > 6 {
		return nil, fmt.Errorf("weekday must be between 0 and 6, got %d", d.Weekday)
	}

	opensAt, err := types.NewTimeStringFromString(d.OpensAt)
	if err != nil {
		return nil, fmt.Errorf("invalid opensAt: %w", err)
	}

	closesAt, err := types.NewTimeStringFromString(d.ClosesAt)
	if err != nil {
		return nil, fmt.Errorf("invalid closesAt: %w", err)
	}

	day := &domain.ScheduleDay{
		Weekday:  time.Weekday(d.Weekday),
		OpensAt:  opensAt,
		ClosesAt: closesAt,
		Active:   d.Active,
	}

	if err := day.Validate(); err != nil {
		return nil, err
	}

	return day, nil
}

// Response модели

// DayResponse расписание одного дня недели
type DayResponse struct {
	Weekday     int    `json:"weekday"`
	WeekdayName string `json:"weekdayName"` // "Monday" ... "Sunday"
	OpensAt     string `json:"opensAt"`
	ClosesAt    string `json:"closesAt"`
	Active      bool   `json:"active"`
}

// WeekResponse недельное расписание, всегда 7 дней начиная с воскресенья
type WeekResponse struct {
	Days []DayResponse `json:"days"`
}

// Методы конвертации

// FromDomainScheduleDay конвертирует domain модель в DTO
func FromDomainScheduleDay(d *domain.ScheduleDay) DayResponse {
	return DayResponse{
		Weekday:     int(d.Weekday),
		WeekdayName: d.Weekday.String(),
		OpensAt:     d.OpensAt.String(),
		ClosesAt:    d.ClosesAt.String(),
		Active:      d.Active,
	}
}

// FromDomainScheduleWeek собирает недельное расписание из сохраненных дней.
// Дни, отсутствующие в хранилище, выходные: active=false с часами по умолчанию
func FromDomainScheduleWeek(days []*domain.ScheduleDay) *WeekResponse {
	byWeekday := make(map[time.Weekday]*domain.ScheduleDay, len(days))
	for _, d := range days {
		byWeekday[d.Weekday] = d
	}

	week := &WeekResponse{Days: make([]DayResponse, 0, 7)}
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		if d, ok := byWeekday[wd]; ok {
			week.Days = append(week.Days, FromDomainScheduleDay(d))
			continue
		}
		week.Days = append(week.Days, DayResponse{
			Weekday:     int(wd),
			WeekdayName: wd.String(),
			OpensAt:     domain.DefaultOpensAt,
			ClosesAt:    domain.DefaultClosesAt,
			Active:      false,
		})
	}

	return week
}
