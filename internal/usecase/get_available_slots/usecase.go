package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/Barbershop-BookingService/internal/domain"
	scheduleRepo "github.com/m04kA/Barbershop-BookingService/internal/infra/storage/schedule"
	catalogClient "github.com/m04kA/Barbershop-BookingService/internal/integrations/catalogservice"
)

// UseCase use case для получения доступных слотов для записи
type UseCase struct {
	appointmentRepo AppointmentRepository
	scheduleRepo    ScheduleRepository
	catalog         CatalogClient
	stepMinutes     int
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
// stepMinutes - шаг сетки слотов из конфигурации (по умолчанию 30 минут)
func NewUseCase(
	appointmentRepo AppointmentRepository,
	scheduleRepo ScheduleRepository,
	catalog CatalogClient,
	stepMinutes int,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		scheduleRepo:    scheduleRepo,
		catalog:         catalog,
		stepMinutes:     stepMinutes,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: service=%d, date=%s",
		req.ServiceID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем услугу из каталога
	service, err := uc.catalog.GetService(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogClient.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 3. Получаем расписание на день недели
	// Выходной день - не ошибка: возвращаем пустой список с признаком Closed,
	// чтобы UI мог отличить выходной от дня без свободных слотов
	day, err := uc.scheduleRepo.GetByWeekday(ctx, req.Date.Weekday())
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleDayNotFound) {
			uc.logger.Info("GetAvailableSlots: salon closed on %s (no schedule)", req.Date.Weekday())
			return closedResponse(req), nil
		}
		uc.logger.Error("GetAvailableSlots: failed to get schedule: %v", err)
		return nil, fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
	}

	if !day.IsOpen() {
		uc.logger.Info("GetAvailableSlots: salon closed on %s (inactive)", req.Date.Weekday())
		return closedResponse(req), nil
	}

	// 4. Для прошедших дат слотов нет, но день не считается выходным
	now := uc.timeProvider.Now()
	if isDateInPast(req.Date, now) {
		uc.logger.Info("GetAvailableSlots: past date %s, no slots", req.Date.Format(domain.DateFormat))
		return &Response{
			Date:         req.Date,
			ServiceID:    req.ServiceID,
			WorkingHours: &WorkingHours{OpensAt: day.OpensAt, ClosesAt: day.ClosesAt},
			Slots:        []Slot{},
			Occupied:     []OccupiedInterval{},
		}, nil
	}

	// 5. Получаем все записи на эту дату одним запросом
	appointments, err := uc.appointmentRepo.GetByDate(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 6. Генерируем слоты с учетом часов работы и занятости
	startTimes, err := generateSlots(day, uc.stepMinutes, service.DurationMinutes, appointments)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
	}

	slots := make([]Slot, len(startTimes))
	for i, startTime := range startTimes {
		slots[i] = Slot{
			StartTime:       startTime,
			DurationMinutes: service.DurationMinutes,
		}
	}

	uc.logger.Info("GetAvailableSlots: generated %d slots for service=%d, date=%s",
		len(slots), req.ServiceID, req.Date.Format(domain.DateFormat))

	return &Response{
		Date:         req.Date,
		ServiceID:    req.ServiceID,
		WorkingHours: &WorkingHours{OpensAt: day.OpensAt, ClosesAt: day.ClosesAt},
		Slots:        slots,
		Occupied:     occupiedIntervals(appointments),
	}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	return nil
}

// closedResponse формирует ответ для выходного дня
func closedResponse(req *Request) *Response {
	return &Response{
		Date:      req.Date,
		ServiceID: req.ServiceID,
		Closed:    true,
		Slots:     []Slot{},
		Occupied:  []OccupiedInterval{},
	}
}
