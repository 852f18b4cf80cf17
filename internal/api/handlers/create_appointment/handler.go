package create_appointment

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/m04kA/Barbershop-BookingService/internal/api/handlers"
	"github.com/m04kA/Barbershop-BookingService/internal/api/middleware"
	createAppointment "github.com/m04kA/Barbershop-BookingService/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateOrTime  = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgInvalidInput       = "некорректные данные записи"
	msgPastDate           = "нельзя записаться на прошедшую дату"
	msgServiceNotFound    = "услуга не найдена"
	msgSalonClosed        = "салон не работает в выбранный день"
	msgUnauthorized       = "требуется авторизация"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	clientID, ok := middleware.ClientIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("POST /appointments - Missing client ID in context")
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest(clientID)
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		h.respondUseCaseError(w, clientID, req.ServiceID, err)
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /appointments - Appointment created successfully: appointment_id=%d, client_id=%d, service_id=%d",
		result.ID, clientID, req.ServiceID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}

// respondUseCaseError транслирует ошибки use case в HTTP ответы.
// Отказы по часам работы и конфликтам несут данные для клиента:
// границы рабочего дня и занятый интервал соответственно
func (h *Handler) respondUseCaseError(w http.ResponseWriter, clientID, serviceID int64, err error) {
	var outsideHours *createAppointment.OutsideHoursError
	var conflict *createAppointment.ConflictError

	switch {
	case errors.Is(err, createAppointment.ErrInvalidInput):
		h.logger.Warn("POST /appointments - Invalid input: client_id=%d, service_id=%d: %v", clientID, serviceID, err)
		handlers.RespondBadRequest(w, msgInvalidInput)

	case errors.Is(err, createAppointment.ErrPastDate):
		h.logger.Warn("POST /appointments - Past date: client_id=%d, service_id=%d", clientID, serviceID)
		handlers.RespondBadRequest(w, msgPastDate)

	case errors.Is(err, createAppointment.ErrServiceNotFound):
		h.logger.Warn("POST /appointments - Service not found: client_id=%d, service_id=%d", clientID, serviceID)
		handlers.RespondNotFound(w, msgServiceNotFound)

	case errors.Is(err, createAppointment.ErrSalonClosed):
		h.logger.Warn("POST /appointments - Salon closed: client_id=%d, service_id=%d", clientID, serviceID)
		handlers.RespondBadRequest(w, msgSalonClosed)

	case errors.As(err, &outsideHours):
		h.logger.Warn("POST /appointments - Outside working hours: client_id=%d, service_id=%d, hours=%s-%s",
			clientID, serviceID, outsideHours.Opens, outsideHours.Closes)
		handlers.RespondBadRequest(w, fmt.Sprintf(
			"услуга должна укладываться в часы работы салона (%s - %s)",
			outsideHours.Opens, outsideHours.Closes))

	case errors.As(err, &conflict):
		h.logger.Warn("POST /appointments - Time conflict: client_id=%d, service_id=%d, busy=%s",
			clientID, serviceID, conflict.Busy)
		handlers.RespondError(w, http.StatusConflict, fmt.Sprintf(
			"выбранное время уже занято (%s)", conflict.Busy))

	default:
		h.logger.Error("POST /appointments - Failed to create appointment: client_id=%d, service_id=%d, error=%v",
			clientID, serviceID, err)
		handlers.RespondInternalError(w)
	}
}
