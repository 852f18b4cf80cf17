package update_schedule

import (
	"context"

	"github.com/m04kA/Barbershop-BookingService/internal/service/schedule/models"
)

type ScheduleService interface {
	UpdateWeek(ctx context.Context, req *models.UpdateWeekRequest) (*models.WeekResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
