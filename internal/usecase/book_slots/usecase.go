package book_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/DORM-ReservationService/internal/domain"
	resourceRepo "github.com/m04kA/DORM-ReservationService/internal/infra/storage/resource"
	slotRepo "github.com/m04kA/DORM-ReservationService/internal/infra/storage/slot"
)

// UseCase use case атомарного бронирования одного или двух смежных слотов
type UseCase struct {
	slotRepo     SlotRepository
	resourceRepo ResourceRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	location     *time.Location
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	slotRepo SlotRepository,
	resourceRepo ResourceRepository,
	txManager TransactionManager,
	location *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		slotRepo:     slotRepo,
		resourceRepo: resourceRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		location:     location,
		logger:       logger,
	}
}

// Execute выполняет бронирование: все слоты действия занимаются в одной
// сериализуемой транзакции, либо не занимается ни один
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BookSlots: user=%d, resource=%d, category=%s, start=%s, duration=%d",
		req.UserID, req.ResourceID, req.Category, req.StartTime.Format(time.RFC3339), req.DurationMinutes)

	// 1. Категория ресурса задаёт шаг сетки, допустимые длительности и квоту
	spec, err := domain.SpecFor(req.Category)
	if err != nil {
		uc.logger.Warn("BookSlots: unknown category %q", req.Category)
		return nil, fmt.Errorf("%w: unknown category", ErrInvalidInput)
	}

	now := uc.timeProvider.Now().In(uc.location)

	// 2. Валидация входных данных
	if err := validateRequest(req, spec, now, uc.location); err != nil {
		uc.logger.Warn("BookSlots: validation failed: %v", err)
		return nil, err
	}

	duration := req.DurationMinutes
	if duration == 0 {
		duration = spec.SlotDurationMinutes
	}
	slotCount := duration / spec.SlotDurationMinutes

	startLocal := req.StartTime.In(uc.location)
	dayStart, dayEnd := domain.DayWindow(startLocal, uc.location)

	var result *Response

	// 3. Ресурс, квота и занятие слотов проверяются в одной сериализуемой
	// транзакции: ни флаг доступности, ни лимит нельзя обойти конкурентным
	// запросом между проверкой и коммитом
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		resource, err := uc.resourceRepo.GetByID(txCtx, req.ResourceID)
		if err != nil {
			if errors.Is(err, resourceRepo.ErrResourceNotFound) {
				uc.logger.Warn("BookSlots: resource id=%d not found", req.ResourceID)
				return ErrResourceNotFound
			}
			uc.logger.Error("BookSlots: failed to get resource id=%d: %v", req.ResourceID, err)
			return fmt.Errorf("%w: failed to get resource: %v", ErrInternal, err)
		}

		if resource.Category != req.Category {
			uc.logger.Warn("BookSlots: resource id=%d belongs to category %s, requested %s",
				req.ResourceID, resource.Category, req.Category)
			return ErrResourceNotFound
		}

		if !resource.IsBookable() {
			uc.logger.Warn("BookSlots: resource id=%d is unavailable", req.ResourceID)
			return ErrResourceUnavailable
		}

		actions, err := uc.slotRepo.CountBookingActions(txCtx, req.UserID, req.Category, dayStart, dayEnd)
		if err != nil {
			uc.logger.Error("BookSlots: failed to count booking actions: %v", err)
			return fmt.Errorf("%w: failed to count booking actions: %v", ErrInternal, err)
		}

		if actions >= int64(spec.MaxBookingActionsPerDay) {
			uc.logger.Warn("BookSlots: user=%d exceeded quota for category=%s: %d/%d",
				req.UserID, req.Category, actions, spec.MaxBookingActionsPerDay)
			return &QuotaExceededError{Count: actions}
		}

		// Общий booked_at связывает слоты одного действия в квотном учёте
		bookedAt := uc.timeProvider.Now()

		slots := make([]BookedSlot, 0, slotCount)
		outcome := OutcomeClaimed

		for i := 0; i < slotCount; i++ {
			slotStart, slotEnd := domain.SlotWindow(startLocal, i, spec.SlotDurationMinutes)

			existing, err := uc.slotRepo.GetForUpdate(txCtx, req.ResourceID, slotStart)
			switch {
			case err == nil:
				if existing.IsBooked() {
					if existing.IsHeldBy(req.UserID) {
						uc.logger.Warn("BookSlots: slot %s already held by user=%d",
							slotStart.Format(domain.TimeFormat), req.UserID)
						return fmt.Errorf("%w: slot %s", ErrSlotHeldBySelf, slotStart.Format(domain.TimeFormat))
					}
					uc.logger.Warn("BookSlots: slot %s held by another user", slotStart.Format(domain.TimeFormat))
					return fmt.Errorf("%w: slot %s", ErrSlotHeldByOther, slotStart.Format(domain.TimeFormat))
				}

				claimed, err := uc.slotRepo.Claim(txCtx, existing.ID, req.UserID, bookedAt, slotEnd)
				if err != nil {
					if errors.Is(err, slotRepo.ErrSlotAlreadyBooked) {
						return fmt.Errorf("%w: slot %s", ErrSlotHeldByOther, slotStart.Format(domain.TimeFormat))
					}
					uc.logger.Error("BookSlots: failed to claim slot: %v", err)
					return fmt.Errorf("%w: failed to claim slot: %v", ErrInternal, err)
				}
				slots = append(slots, BookedSlot{ID: claimed.ID, StartTime: claimed.StartTime, EndTime: claimed.EndTime})

			case errors.Is(err, slotRepo.ErrSlotNotFound):
				created, err := uc.slotRepo.CreateBooked(txCtx, &domain.TimeSlot{
					ResourceID: req.ResourceID,
					StartTime:  slotStart,
					EndTime:    slotEnd,
					UserID:     &req.UserID,
					BookedAt:   &bookedAt,
				})
				if err != nil {
					if errors.Is(err, slotRepo.ErrDuplicateSlot) {
						uc.logger.Warn("BookSlots: concurrent insert of slot %s", slotStart.Format(domain.TimeFormat))
						return fmt.Errorf("%w: slot %s", ErrStorageConflict, slotStart.Format(domain.TimeFormat))
					}
					uc.logger.Error("BookSlots: failed to create slot: %v", err)
					return fmt.Errorf("%w: failed to create slot: %v", ErrInternal, err)
				}
				outcome = OutcomeCreated
				slots = append(slots, BookedSlot{ID: created.ID, StartTime: created.StartTime, EndTime: created.EndTime})

			case errors.Is(err, slotRepo.ErrLockTimeout):
				// Слот держит конкурирующая транзакция дольше lock_timeout:
				// для клиента это конфликт, а не отказ сервиса
				uc.logger.Warn("BookSlots: lock wait timed out on slot %s", slotStart.Format(domain.TimeFormat))
				return fmt.Errorf("%w: slot %s", ErrStorageConflict, slotStart.Format(domain.TimeFormat))

			default:
				uc.logger.Error("BookSlots: failed to get slot: %v", err)
				return fmt.Errorf("%w: failed to get slot: %v", ErrInternal, err)
			}
		}

		result = &Response{
			Outcome:    outcome,
			ResourceID: req.ResourceID,
			UserID:     req.UserID,
			BookedAt:   bookedAt,
			Slots:      slots,
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("BookSlots: %s %d slot(s) for user=%d on resource=%d",
		result.Outcome, len(result.Slots), req.UserID, req.ResourceID)

	return result, nil
}
