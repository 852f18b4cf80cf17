package domain

import "errors"

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MinServiceDurationMinutes = 0   // вырожденная нулевая длительность допустима
	MaxServiceDurationMinutes = 480 // 8 hours
	MaxNotesLength            = 500
)

// Дефолтные часы работы, подставляются в форму управления расписанием
// для дней без сохраненной записи
const (
	DefaultOpensAt  = "08:00"
	DefaultClosesAt = "18:00"
)

// ErrInvalidWorkingHours возвращается, когда время открытия не раньше времени закрытия
var ErrInvalidWorkingHours = errors.New("domain: opening time must be before closing time")
