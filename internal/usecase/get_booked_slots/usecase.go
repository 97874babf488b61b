package get_booked_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/DORM-ReservationService/internal/domain"
	resourceRepo "github.com/m04kA/DORM-ReservationService/internal/infra/storage/resource"
	"github.com/m04kA/DORM-ReservationService/pkg/ptr"
)

// UseCase use case получения занятых слотов ресурса на дату
type UseCase struct {
	slotRepo     SlotRepository
	resourceRepo ResourceRepository
	location     *time.Location
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	slotRepo SlotRepository,
	resourceRepo ResourceRepository,
	location *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		slotRepo:     slotRepo,
		resourceRepo: resourceRepo,
		location:     location,
		logger:       logger,
	}
}

// Execute возвращает занятые слоты ресурса за календарный день
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetBookedSlots: resource=%d, category=%s, date=%s",
		req.ResourceID, req.Category, req.Date.Format(domain.DateFormat))

	if req.ResourceID <= 0 {
		return nil, fmt.Errorf("%w: resourceID must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	resource, err := uc.resourceRepo.GetByID(ctx, req.ResourceID)
	if err != nil {
		if errors.Is(err, resourceRepo.ErrResourceNotFound) {
			uc.logger.Warn("GetBookedSlots: resource id=%d not found", req.ResourceID)
			return nil, ErrResourceNotFound
		}
		uc.logger.Error("GetBookedSlots: failed to get resource id=%d: %v", req.ResourceID, err)
		return nil, fmt.Errorf("%w: failed to get resource: %v", ErrInternal, err)
	}

	if resource.Category != req.Category {
		uc.logger.Warn("GetBookedSlots: resource id=%d belongs to category %s, requested %s",
			req.ResourceID, resource.Category, req.Category)
		return nil, ErrResourceNotFound
	}

	// Окно строится из компонентов даты в опорной таймзоне: дата приходит
	// распарсенной в UTC, и конвертация момента сдвинула бы западные зоны
	// на предыдущий календарный день
	localDate := time.Date(req.Date.Year(), req.Date.Month(), req.Date.Day(), 0, 0, 0, 0, uc.location)
	dayStart, dayEnd := domain.DayWindow(localDate, uc.location)

	slots, err := uc.slotRepo.ListBookedByResourceAndPeriod(ctx, req.ResourceID, dayStart, dayEnd)
	if err != nil {
		uc.logger.Error("GetBookedSlots: failed to list slots: %v", err)
		return nil, fmt.Errorf("%w: failed to list slots: %v", ErrInternal, err)
	}

	booked := make([]BookedSlot, 0, len(slots))
	for _, slot := range slots {
		booked = append(booked, BookedSlot{
			ID:        slot.ID,
			StartTime: slot.StartTime,
			EndTime:   slot.EndTime,
			UserID:    ptr.Value(slot.UserID),
			BookedAt:  ptr.Value(slot.BookedAt),
		})
	}

	uc.logger.Info("GetBookedSlots: resource=%d, date=%s, found %d booked slot(s)",
		req.ResourceID, req.Date.Format(domain.DateFormat), len(booked))

	return &Response{
		ResourceID: req.ResourceID,
		Date:       req.Date,
		Slots:      booked,
	}, nil
}
