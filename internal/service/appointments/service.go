package appointments

import (
	"context"
	"errors"
	"fmt"
	"time"

	appointmentRepo "github.com/m04kA/Barbershop-BookingService/internal/infra/storage/appointment"
	"github.com/m04kA/Barbershop-BookingService/internal/service/appointments/models"
)

// Service сервис для работы с записями клиентов
type Service struct {
	appointmentRepo AppointmentRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(appointmentRepo AppointmentRepository, logger Logger) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		logger:          logger,
	}
}

// GetByID получает запись по ID
// Клиент может видеть только собственную запись
func (s *Service) GetByID(ctx context.Context, id int64, clientID int64) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%d for client=%d", id, clientID)

	appointment, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if !appointment.BelongsTo(clientID) {
		s.logger.Warn("GetByID: access denied for client=%d to appointment id=%d", clientID, id)
		return nil, ErrAccessDenied
	}

	s.logger.Info("GetByID: successfully fetched appointment id=%d", id)
	return models.FromDomainAppointment(appointment), nil
}

// GetClientAppointments получает все записи клиента
// Записи отсортированы по дате и времени начала
func (s *Service) GetClientAppointments(ctx context.Context, clientID int64) (*models.AppointmentListResponse, error) {
	s.logger.Info("GetClientAppointments: fetching appointments for client=%d", clientID)

	if clientID <= 0 {
		s.logger.Warn("GetClientAppointments: invalid clientID=%d", clientID)
		return nil, fmt.Errorf("%w: clientID must be positive", ErrInvalidInput)
	}

	appointments, err := s.appointmentRepo.GetByClientID(ctx, clientID)
	if err != nil {
		s.logger.Error("GetClientAppointments: repository error for client=%d: %v", clientID, err)
		return nil, fmt.Errorf("%w: GetClientAppointments - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetClientAppointments: successfully fetched %d appointments for client=%d",
		len(appointments), clientID)
	return models.FromDomainAppointmentList(appointments), nil
}

// GetDayAppointments получает все записи на дату
// Используется персоналом салона для просмотра журнала дня
func (s *Service) GetDayAppointments(ctx context.Context, date time.Time) (*models.AppointmentListResponse, error) {
	s.logger.Info("GetDayAppointments: fetching appointments for date=%s", date.Format("2006-01-02"))

	if date.IsZero() {
		s.logger.Warn("GetDayAppointments: date is required")
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	appointments, err := s.appointmentRepo.GetByDate(ctx, date)
	if err != nil {
		s.logger.Error("GetDayAppointments: repository error for date=%s: %v",
			date.Format("2006-01-02"), err)
		return nil, fmt.Errorf("%w: GetDayAppointments - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetDayAppointments: successfully fetched %d appointments for date=%s",
		len(appointments), date.Format("2006-01-02"))
	return models.FromDomainAppointmentList(appointments), nil
}

// Cancel отменяет запись клиента
// Клиент может отменить только собственную запись, слот сразу освобождается
func (s *Service) Cancel(ctx context.Context, id int64, clientID int64) error {
	s.logger.Info("Cancel: cancelling appointment id=%d by client=%d", id, clientID)

	appointment, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Cancel: appointment id=%d not found", id)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: repository error for appointment id=%d: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if !appointment.BelongsTo(clientID) {
		s.logger.Warn("Cancel: access denied for client=%d to appointment id=%d", clientID, id)
		return ErrAccessDenied
	}

	if err := s.appointmentRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Cancel: appointment id=%d not found during deletion", id)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: repository error for appointment id=%d: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled appointment id=%d", id)
	return nil
}
