package create_appointment

import (
	"time"

	"github.com/m04kA/Barbershop-BookingService/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	ClientID  int64            // ID клиента (из заголовка аутентификации)
	ServiceID int64            // ID услуги из каталога
	Date      time.Time        // Дата записи (без времени)
	StartTime types.TimeString // Время начала (например, "14:30")
	Notes     *string          // Пожелания клиента (опционально)
}

// Response модель ответа с созданной записью
type Response struct {
	ID              int64            // ID созданной записи
	ClientID        int64            // ID клиента
	ServiceID       int64            // ID услуги
	Date            time.Time        // Дата записи
	StartTime       types.TimeString // Время начала
	EndTime         types.TimeString // Время окончания (начало + длительность услуги)
	DurationMinutes int              // Длительность в минутах

	// Денормализованные данные услуги
	ServiceName  string  // Название услуги
	ServicePrice float64 // Цена услуги

	Notes *string // Пожелания клиента

	CreatedAt time.Time // Время создания
}
