package update_schedule

import (
	"errors"
	"net/http"

	"github.com/m04kA/Barbershop-BookingService/internal/api/handlers"
	"github.com/m04kA/Barbershop-BookingService/internal/api/middleware"
	"github.com/m04kA/Barbershop-BookingService/internal/service/schedule"
	"github.com/m04kA/Barbershop-BookingService/internal/service/schedule/models"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidInput        = "некорректные данные расписания"
	msgInvalidWorkingHours = "время открытия должно быть раньше времени закрытия"
	msgUnauthorized        = "требуется авторизация"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/staff/schedule
// Обновление недельного расписания салона персоналом
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	staffID, ok := middleware.StaffIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("PUT /staff/schedule - Missing staff ID in context")
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	var req models.UpdateWeekRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /staff/schedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateWeek(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidWorkingHours):
			h.logger.Warn("PUT /staff/schedule - Invalid working hours: staff_id=%d: %v", staffID, err)
			handlers.RespondBadRequest(w, msgInvalidWorkingHours)

		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("PUT /staff/schedule - Invalid input: staff_id=%d: %v", staffID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /staff/schedule - Failed to update schedule: staff_id=%d, error=%v",
				staffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /staff/schedule - Schedule updated successfully: staff_id=%d", staffID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
