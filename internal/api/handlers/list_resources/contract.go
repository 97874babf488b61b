package list_resources

import (
	"context"

	"github.com/m04kA/DORM-ReservationService/internal/domain"
	"github.com/m04kA/DORM-ReservationService/internal/service/resources/models"
)

type ResourcesService interface {
	ListByCategory(ctx context.Context, category domain.ResourceCategory) (*models.ResourceListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
