// Package resources сервис для просмотра ресурсов и их текущего состояния
package resources

import (
	"context"
	"fmt"

	"github.com/m04kA/DORM-ReservationService/internal/domain"
	"github.com/m04kA/DORM-ReservationService/internal/service/resources/models"
)

// Service сервис для работы с ресурсами
type Service struct {
	resourceRepo ResourceRepository
	slotRepo     SlotRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса ресурсов
func NewService(
	resourceRepo ResourceRepository,
	slotRepo SlotRepository,
	logger Logger,
) *Service {
	return &Service{
		resourceRepo: resourceRepo,
		slotRepo:     slotRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// ListByCategory возвращает все ресурсы категории с признаком занятости
// в текущий момент. Недоступные ресурсы тоже попадают в список: клиенту
// нужно показывать их как выведенные из обслуживания.
func (s *Service) ListByCategory(ctx context.Context, category domain.ResourceCategory) (*models.ResourceListResponse, error) {
	s.logger.Info("ListByCategory: fetching resources for category=%s", category)

	if _, err := domain.SpecFor(category); err != nil {
		s.logger.Warn("ListByCategory: unknown category %q", category)
		return nil, fmt.Errorf("%w: unknown category", ErrInvalidInput)
	}

	resources, err := s.resourceRepo.ListByCategory(ctx, category)
	if err != nil {
		s.logger.Error("ListByCategory: repository error for category=%s: %v", category, err)
		return nil, fmt.Errorf("%w: ListByCategory - repository error: %v", ErrInternal, err)
	}

	now := s.timeProvider.Now()

	result := make([]models.ResourceResponse, 0, len(resources))
	for i := range resources {
		// Занятость определяется только состоянием слотов: вывод ресурса
		// из бронирования не затрагивает уже занятые слоты
		occupied, err := s.slotRepo.HasActiveAt(ctx, resources[i].ID, now)
		if err != nil {
			s.logger.Error("ListByCategory: failed to check occupancy for resource id=%d: %v",
				resources[i].ID, err)
			return nil, fmt.Errorf("%w: ListByCategory - occupancy check: %v", ErrInternal, err)
		}
		result = append(result, models.FromDomainResource(&resources[i], occupied))
	}

	s.logger.Info("ListByCategory: found %d resource(s) for category=%s", len(result), category)

	return &models.ResourceListResponse{Resources: result}, nil
}
