package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/Barbershop-BookingService/internal/domain"
	"github.com/m04kA/Barbershop-BookingService/internal/service/schedule/models"
)

// Service сервис для управления расписанием работы салона
type Service struct {
	scheduleRepo ScheduleRepository
	txManager    TransactionManager
	logger       Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(
	scheduleRepo ScheduleRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		scheduleRepo: scheduleRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// GetWeek получает недельное расписание салона
// Публичный метод - всегда возвращает 7 дней, отсутствующие в хранилище
// дни считаются выходными
func (s *Service) GetWeek(ctx context.Context) (*models.WeekResponse, error) {
	s.logger.Info("GetWeek: fetching weekly schedule")

	days, err := s.scheduleRepo.ListAll(ctx)
	if err != nil {
		s.logger.Error("GetWeek: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetWeek - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetWeek: successfully fetched %d schedule days", len(days))
	return models.FromDomainScheduleWeek(days), nil
}

// UpdateWeek обновляет недельное расписание салона
// Доступно только персоналу. Все дни запроса применяются в одной транзакции:
// активный день создается или обновляется, неактивный помечается выходным.
// Дни, отсутствующие в запросе, не изменяются
func (s *Service) UpdateWeek(ctx context.Context, req *models.UpdateWeekRequest) (*models.WeekResponse, error) {
	s.logger.Info("UpdateWeek: updating schedule for %d days", len(req.Days))

	// 1. Валидация входных данных
	updates, err := s.validateRequest(req)
	if err != nil {
		s.logger.Warn("UpdateWeek: validation failed: %v", err)
		return nil, err
	}

	// 2. Применяем обновления атомарно
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		for _, upd := range updates {
			if upd.day != nil {
				if _, err := s.scheduleRepo.Upsert(ctx, upd.day); err != nil {
					return fmt.Errorf("failed to upsert weekday %s: %w", upd.day.Weekday, err)
				}
				continue
			}
			if err := s.scheduleRepo.Deactivate(ctx, upd.weekday); err != nil {
				return fmt.Errorf("failed to deactivate weekday %s: %w", upd.weekday, err)
			}
		}
		return nil
	})
	if err != nil {
		s.logger.Error("UpdateWeek: transaction failed: %v", err)
		return nil, fmt.Errorf("%w: UpdateWeek - transaction failed: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateWeek: successfully updated %d days", len(updates))

	// 3. Возвращаем актуальное недельное расписание
	return s.GetWeek(ctx)
}

// dayUpdate подготовленное обновление одного дня:
// day != nil - upsert, иначе деактивация weekday
type dayUpdate struct {
	weekday time.Weekday
	day     *domain.ScheduleDay
}

// validateRequest валидирует запрос и конвертирует дни в domain модели
func (s *Service) validateRequest(req *models.UpdateWeekRequest) ([]dayUpdate, error) {
	if len(req.Days) == 0 {
		return nil, fmt.Errorf("%w: days list is empty", ErrInvalidInput)
	}

	seen := make(map[int]bool, len(req.Days))
	updates := make([]dayUpdate, 0, len(req.Days))

	for _, d := range req.Days {
		if d.Weekday < 0 || d.Weekday > 6 {
			return nil, fmt.Errorf("%w: weekday must be between 0 and 6, got %d", ErrInvalidInput, d.Weekday)
		}
		if seen[d.Weekday] {
			return nil, fmt.Errorf("%w: duplicate weekday %d", ErrInvalidInput, d.Weekday)
		}
		seen[d.Weekday] = true

		// Для выходного дня часы не нужны
		if !d.Active {
			updates = append(updates, dayUpdate{weekday: time.Weekday(d.Weekday)})
			continue
		}

		day, err := d.ToDomainScheduleDay()
		if err != nil {
			if errors.Is(err, domain.ErrInvalidWorkingHours) {
				return nil, fmt.Errorf("%w: weekday %d: opening time must be before closing time",
					ErrInvalidWorkingHours, d.Weekday)
			}
			return nil, fmt.Errorf("%w: weekday %d: %v", ErrInvalidInput, d.Weekday, err)
		}

		updates = append(updates, dayUpdate{weekday: day.Weekday, day: day})
	}

	return updates, nil
}
