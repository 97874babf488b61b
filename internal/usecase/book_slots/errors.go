package book_slots

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("book_slots: invalid input data")

	// ErrResourceNotFound возвращается, когда ресурс не найден
	ErrResourceNotFound = errors.New("book_slots: resource not found")

	// ErrResourceUnavailable возвращается, когда ресурс выведен из обслуживания
	ErrResourceUnavailable = errors.New("book_slots: resource is unavailable")

	// ErrQuotaExceeded возвращается, когда дневной лимит бронирований по категории исчерпан
	ErrQuotaExceeded = errors.New("book_slots: daily booking quota exceeded")

	// ErrSlotHeldBySelf возвращается, когда один из слотов уже занят самим пользователем
	ErrSlotHeldBySelf = errors.New("book_slots: slot already booked by this user")

	// ErrSlotHeldByOther возвращается, когда один из слотов занят другим пользователем
	ErrSlotHeldByOther = errors.New("book_slots: slot already booked by another user")

	// ErrStorageConflict возвращается при конкурентной вставке того же слота
	ErrStorageConflict = errors.New("book_slots: concurrent booking conflict")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("book_slots: internal error")
)

// QuotaExceededError несёт число уже сделанных за день действий:
// оно попадает в сообщение пользователю
type QuotaExceededError struct {
	Count int64
}

func (e *QuotaExceededError) Error() string {
	return fmt.Sprintf("book_slots: daily booking quota exceeded: %d bookings already made today", e.Count)
}

func (e *QuotaExceededError) Unwrap() error { return ErrQuotaExceeded }
