package get_available_slots

import (
	"time"

	"github.com/m04kA/Barbershop-BookingService/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	ServiceID int64     // ID услуги
	Date      time.Time // Дата для получения слотов (без времени)
}

// Response модель ответа со списком доступных слотов
// Closed отличает выходной день от рабочего дня, в который не поместился
// ни один слот: в обоих случаях Slots пуст
type Response struct {
	Date      time.Time // Дата, на которую запрашивались слоты
	ServiceID int64     // ID услуги
	Closed    bool      // true, если салон в этот день не работает

	WorkingHours *WorkingHours // Часы работы (nil, если салон закрыт)

	Slots    []Slot             // Доступные слоты в порядке возрастания времени
	Occupied []OccupiedInterval // Занятые интервалы для отображения в UI
}

// WorkingHours границы рабочего дня
type WorkingHours struct {
	OpensAt  types.TimeString
	ClosesAt types.TimeString
}

// Slot модель доступного слота
type Slot struct {
	StartTime       types.TimeString // Время начала слота (например, "10:00")
	DurationMinutes int              // Длительность услуги в минутах
}

// OccupiedInterval занятый существующей записью интервал
type OccupiedInterval struct {
	StartTime   types.TimeString // Время начала
	EndTime     types.TimeString // Время окончания
	ServiceName string           // Название услуги существующей записи
}
