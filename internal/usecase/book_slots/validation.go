package book_slots

import (
	"fmt"
	"time"

	"github.com/m04kA/DORM-ReservationService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request, spec *domain.CategorySpec, now time.Time, loc *time.Location) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.ResourceID <= 0 {
		return fmt.Errorf("%w: resourceID must be positive", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if !domain.IsSlotAligned(req.StartTime, loc) {
		return fmt.Errorf("%w: startTime must be aligned to %d-minute slot boundaries",
			ErrInvalidInput, spec.SlotDurationMinutes)
	}

	duration := req.DurationMinutes
	if duration == 0 {
		duration = spec.SlotDurationMinutes
	}
	if !spec.IsDurationAllowed(duration) {
		return fmt.Errorf("%w: durationMinutes must be one of %v", ErrInvalidInput, spec.AllowedDurationsMinutes)
	}

	// Небольшой допуск на прошедшее время покрывает сетевые задержки
	// и расхождение часов клиента.
	if req.StartTime.Before(now.Add(-domain.PastBookingTolerance)) {
		return fmt.Errorf("%w: startTime is in the past", ErrInvalidInput)
	}

	return nil
}
