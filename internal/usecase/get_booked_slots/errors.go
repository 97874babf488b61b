package get_booked_slots

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_booked_slots: invalid input data")

	// ErrResourceNotFound возвращается, когда ресурс не найден
	ErrResourceNotFound = errors.New("get_booked_slots: resource not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_booked_slots: internal error")
)
