package book_slots

import (
	"context"
	"time"

	"github.com/m04kA/DORM-ReservationService/internal/domain"
)

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	GetForUpdate(ctx context.Context, resourceID int64, startTime time.Time) (*domain.TimeSlot, error)
	CreateBooked(ctx context.Context, slot *domain.TimeSlot) (*domain.TimeSlot, error)
	Claim(ctx context.Context, slotID int64, userID int64, bookedAt time.Time, endTime time.Time) (*domain.TimeSlot, error)
	CountBookingActions(ctx context.Context, userID int64, category domain.ResourceCategory, from, to time.Time) (int64, error)
}

// ResourceRepository интерфейс репозитория ресурсов
type ResourceRepository interface {
	GetByID(ctx context.Context, resourceID int64) (*domain.Resource, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
