package schedule

import (
	"context"
	"time"

	"github.com/m04kA/Barbershop-BookingService/internal/domain"
)

// ScheduleRepository интерфейс репозитория расписания работы салона
type ScheduleRepository interface {
	ListAll(ctx context.Context) ([]*domain.ScheduleDay, error)
	Upsert(ctx context.Context, day *domain.ScheduleDay) (*domain.ScheduleDay, error)
	Deactivate(ctx context.Context, weekday time.Weekday) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
