package get_available_slots

import (
	"time"

	"github.com/m04kA/Barbershop-BookingService/internal/domain"
	getAvailableSlots "github.com/m04kA/Barbershop-BookingService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date      string `json:"date"`
	ServiceID int64  `json:"serviceId"`
	Closed    bool   `json:"closed"`

	WorkingHours *WorkingHoursResponse `json:"workingHours,omitempty"`

	Slots    []SlotResponse             `json:"slots"`
	Occupied []OccupiedIntervalResponse `json:"occupied"`
}

// WorkingHoursResponse границы рабочего дня
type WorkingHoursResponse struct {
	OpensAt  string `json:"opensAt"`
	ClosesAt string `json:"closesAt"`
}

// SlotResponse доступный слот
type SlotResponse struct {
	StartTime       string `json:"startTime"`
	DurationMinutes int    `json:"durationMinutes"`
}

// OccupiedIntervalResponse занятый интервал
type OccupiedIntervalResponse struct {
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	ServiceName string `json:"serviceName"`
}

// ToUseCaseRequest конвертирует параметры запроса в модель use case
func ToUseCaseRequest(serviceID int64, dateStr string) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		ServiceID: serviceID,
		Date:      date,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	result := &AvailableSlotsResponse{
		Date:      resp.Date.Format(domain.DateFormat),
		ServiceID: resp.ServiceID,
		Closed:    resp.Closed,
		Slots:     make([]SlotResponse, 0, len(resp.Slots)),
		Occupied:  make([]OccupiedIntervalResponse, 0, len(resp.Occupied)),
	}

	if resp.WorkingHours != nil {
		result.WorkingHours = &WorkingHoursResponse{
			OpensAt:  resp.WorkingHours.OpensAt.String(),
			ClosesAt: resp.WorkingHours.ClosesAt.String(),
		}
	}

	for _, slot := range resp.Slots {
		result.Slots = append(result.Slots, SlotResponse{
			StartTime:       slot.StartTime.String(),
			DurationMinutes: slot.DurationMinutes,
		})
	}

	for _, occupied := range resp.Occupied {
		result.Occupied = append(result.Occupied, OccupiedIntervalResponse{
			StartTime:   occupied.StartTime.String(),
			EndTime:     occupied.EndTime.String(),
			ServiceName: occupied.ServiceName,
		})
	}

	return result
}
