package resources

import (
	"context"
	"time"

	"github.com/m04kA/DORM-ReservationService/internal/domain"
)

// ResourceRepository интерфейс репозитория ресурсов
type ResourceRepository interface {
	ListByCategory(ctx context.Context, category domain.ResourceCategory) ([]domain.Resource, error)
}

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	HasActiveAt(ctx context.Context, resourceID int64, at time.Time) (bool, error)
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
