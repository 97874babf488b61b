package list_slots

import (
	"time"

	"github.com/m04kA/DORM-ReservationService/internal/domain"
	getBookedSlots "github.com/m04kA/DORM-ReservationService/internal/usecase/get_booked_slots"
)

// BookedSlotResponse занятый слот в HTTP ответе
type BookedSlotResponse struct {
	ID        int64  `json:"id"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	UserID    int64  `json:"userId"`
	BookedAt  string `json:"bookedAt"`
}

// SlotListResponse HTTP response model
type SlotListResponse struct {
	ResourceID int64                `json:"resourceId"`
	Date       string               `json:"date"`
	Slots      []BookedSlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getBookedSlots.Response) *SlotListResponse {
	slots := make([]BookedSlotResponse, 0, len(resp.Slots))
	for _, slot := range resp.Slots {
		slots = append(slots, BookedSlotResponse{
			ID:        slot.ID,
			StartTime: slot.StartTime.Format(time.RFC3339),
			EndTime:   slot.EndTime.Format(time.RFC3339),
			UserID:    slot.UserID,
			BookedAt:  slot.BookedAt.Format(time.RFC3339),
		})
	}

	return &SlotListResponse{
		ResourceID: resp.ResourceID,
		Date:       resp.Date.Format(domain.DateFormat),
		Slots:      slots,
	}
}
