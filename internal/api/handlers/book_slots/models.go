package book_slots

import (
	"time"

	"github.com/m04kA/DORM-ReservationService/internal/domain"
	bookSlots "github.com/m04kA/DORM-ReservationService/internal/usecase/book_slots"
)

// BookSlotsRequest HTTP request model
type BookSlotsRequest struct {
	StartTime       string `json:"startTime"`                 // RFC3339, например "2026-08-28T10:30:00+09:00"
	DurationMinutes int    `json:"durationMinutes,omitempty"` // 0 — один слот по умолчанию
}

// BookedSlotResponse один занятый слот в HTTP ответе
type BookedSlotResponse struct {
	ID        int64  `json:"id"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// BookSlotsResponse HTTP response model
type BookSlotsResponse struct {
	Outcome    string               `json:"outcome"`
	ResourceID int64                `json:"resourceId"`
	UserID     int64                `json:"userId"`
	BookedAt   string               `json:"bookedAt"`
	Slots      []BookedSlotResponse `json:"slots"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *BookSlotsRequest) ToUseCaseRequest(userID, resourceID int64, category domain.ResourceCategory) (*bookSlots.Request, error) {
	startTime, err := time.Parse(time.RFC3339, r.StartTime)
	if err != nil {
		return nil, err
	}

	return &bookSlots.Request{
		UserID:          userID,
		ResourceID:      resourceID,
		Category:        category,
		StartTime:       startTime,
		DurationMinutes: r.DurationMinutes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *bookSlots.Response) *BookSlotsResponse {
	slots := make([]BookedSlotResponse, 0, len(resp.Slots))
	for _, slot := range resp.Slots {
		slots = append(slots, BookedSlotResponse{
			ID:        slot.ID,
			StartTime: slot.StartTime.Format(time.RFC3339),
			EndTime:   slot.EndTime.Format(time.RFC3339),
		})
	}

	return &BookSlotsResponse{
		Outcome:    resp.Outcome,
		ResourceID: resp.ResourceID,
		UserID:     resp.UserID,
		BookedAt:   resp.BookedAt.Format(time.RFC3339),
		Slots:      slots,
	}
}
