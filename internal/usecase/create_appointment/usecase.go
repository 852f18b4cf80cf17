package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/Barbershop-BookingService/internal/domain"
	scheduleRepo "github.com/m04kA/Barbershop-BookingService/internal/infra/storage/schedule"
	catalogClient "github.com/m04kA/Barbershop-BookingService/internal/integrations/catalogservice"
)

// UseCase use case для создания записи клиента
// Проверки выполняются строго по порядку, каждая отсекает остальные:
// входные данные -> прошедшая дата -> услуга -> выходной -> часы работы -> конфликт
type UseCase struct {
	appointmentRepo AppointmentRepository
	scheduleRepo    ScheduleRepository
	catalog         CatalogClient
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	scheduleRepo ScheduleRepository,
	catalog CatalogClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		scheduleRepo:    scheduleRepo,
		catalog:         catalog,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания записи
// Проверка занятости и вставка выполняются в одной сериализуемой транзакции
// с блокировкой записей дня, иначе два конкурентных запроса на пересекающиеся
// интервалы могут оба пройти проверку конфликтов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: client=%d, service=%d, date=%s, time=%s",
		req.ClientID, req.ServiceID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Проверяем, что дата не в прошлом
	if isDateInPast(req.Date, now) {
		uc.logger.Warn("CreateAppointment: past date %s for client=%d",
			req.Date.Format(domain.DateFormat), req.ClientID)
		return nil, ErrPastDate
	}

	// 4. Получаем услугу из каталога
	service, err := uc.catalog.GetService(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogClient.ErrServiceNotFound) {
			uc.logger.Warn("CreateAppointment: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// Переменная для хранения результата
	var result *domain.Appointment

	// 5. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Получаем расписание на день недели
		day, err := uc.scheduleRepo.GetByWeekday(txCtx, req.Date.Weekday())
		if err != nil {
			if errors.Is(err, scheduleRepo.ErrScheduleDayNotFound) {
				uc.logger.Warn("CreateAppointment: salon closed on %s (no schedule)", req.Date.Weekday())
				return ErrSalonClosed
			}
			uc.logger.Error("CreateAppointment: failed to get schedule: %v", err)
			return fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
		}

		// Неактивный день недели равнозначен отсутствию расписания
		if !day.IsOpen() {
			uc.logger.Warn("CreateAppointment: salon closed on %s (inactive)", req.Date.Weekday())
			return ErrSalonClosed
		}

		// 5.2. Проверяем, что запись помещается в часы работы
		candidate, err := validateWithinHours(req.StartTime, service.DurationMinutes, day)
		if err != nil {
			uc.logger.Warn("CreateAppointment: outside working hours: client=%d, time=%s: %v",
				req.ClientID, req.StartTime, err)
			return err
		}

		// 5.3. Получаем все записи на эту дату с блокировкой (FOR UPDATE)
		existing, err := uc.appointmentRepo.GetByDate(txCtx, req.Date)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get appointments: %v", err)
			return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}

		// 5.4. Проверяем пересечение с существующими записями
		if busy, found := domain.FindConflict(candidate, existing); found {
			uc.logger.Warn("CreateAppointment: conflict for client=%d: candidate=%s, occupied=%s",
				req.ClientID, candidate, busy)
			return &ConflictError{Busy: busy}
		}

		// 5.5. Создаем запись с денормализацией данных услуги
		appointment := &domain.Appointment{
			ClientID:        req.ClientID,
			ServiceID:       req.ServiceID,
			Date:            req.Date,
			StartTime:       req.StartTime,
			DurationMinutes: service.DurationMinutes,
			ServiceName:     service.Name,
			ServicePrice:    service.Price,
			Notes:           req.Notes,
		}

		created, err := uc.appointmentRepo.Create(txCtx, appointment)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	endTime, err := result.EndTime()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to compute end time: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%d for client=%d",
		result.ID, result.ClientID)

	// Конвертируем в response
	return &Response{
		ID:              result.ID,
		ClientID:        result.ClientID,
		ServiceID:       result.ServiceID,
		Date:            result.Date,
		StartTime:       result.StartTime,
		EndTime:         endTime,
		DurationMinutes: result.DurationMinutes,
		ServiceName:     result.ServiceName,
		ServicePrice:    result.ServicePrice,
		Notes:           result.Notes,
		CreatedAt:       result.CreatedAt,
	}, nil
}
