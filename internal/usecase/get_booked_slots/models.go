package get_booked_slots

import (
	"time"

	"github.com/m04kA/DORM-ReservationService/internal/domain"
)

// Request модель запроса занятых слотов ресурса на дату
type Request struct {
	ResourceID int64                   // ID ресурса
	Category   domain.ResourceCategory // Категория ресурса (из пути запроса)
	Date       time.Time               // Календарный день в опорной таймзоне
}

// BookedSlot занятый слот в ответе
type BookedSlot struct {
	ID        int64     // ID слота
	StartTime time.Time // Время начала
	EndTime   time.Time // Время окончания
	UserID    int64     // ID пользователя, занявшего слот
	BookedAt  time.Time // Момент действия бронирования
}

// Response модель ответа со списком занятых слотов
type Response struct {
	ResourceID int64        // ID ресурса
	Date       time.Time    // Запрошенный день
	Slots      []BookedSlot // Занятые слоты в порядке возрастания времени
}
