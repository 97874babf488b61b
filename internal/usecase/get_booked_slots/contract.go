package get_booked_slots

import (
	"context"
	"time"

	"github.com/m04kA/DORM-ReservationService/internal/domain"
)

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	ListBookedByResourceAndPeriod(ctx context.Context, resourceID int64, from, to time.Time) ([]domain.TimeSlot, error)
}

// ResourceRepository интерфейс репозитория ресурсов
type ResourceRepository interface {
	GetByID(ctx context.Context, resourceID int64) (*domain.Resource, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
