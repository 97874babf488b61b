package list_slots

import (
	"context"

	getBookedSlots "github.com/m04kA/DORM-ReservationService/internal/usecase/get_booked_slots"
)

type GetBookedSlotsUseCase interface {
	Execute(ctx context.Context, req *getBookedSlots.Request) (*getBookedSlots.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
