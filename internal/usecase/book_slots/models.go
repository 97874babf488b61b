package book_slots

import (
	"time"

	"github.com/m04kA/DORM-ReservationService/internal/domain"
)

// Исход бронирования: created — хотя бы один слот вставлен заново,
// claimed — все слоты уже существовали и были заняты пользователем.
const (
	OutcomeCreated = "created"
	OutcomeClaimed = "claimed"
)

// Request модель запроса на бронирование слотов
type Request struct {
	UserID          int64                   // ID пользователя
	ResourceID      int64                   // ID ресурса
	Category        domain.ResourceCategory // Категория ресурса (из пути запроса)
	StartTime       time.Time               // Время начала первого слота
	DurationMinutes int                     // Суммарная длительность (0 — один слот по умолчанию)
}

// BookedSlot один занятый слот в ответе
type BookedSlot struct {
	ID        int64     // ID слота
	StartTime time.Time // Время начала
	EndTime   time.Time // Время окончания
}

// Response модель ответа о выполненном бронировании
type Response struct {
	Outcome    string       // created или claimed
	ResourceID int64        // ID ресурса
	UserID     int64        // ID пользователя
	BookedAt   time.Time    // Момент действия бронирования, общий для всех слотов
	Slots      []BookedSlot // Занятые слоты в порядке возрастания времени
}
