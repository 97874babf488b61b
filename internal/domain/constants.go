package domain

import "time"

// Default configuration values
const (
	DefaultSlotDurationMinutes = 30
)

// Business validation constants
const (
	// PastBookingTolerance допустимое отставание start_time от текущего момента.
	// Компенсирует расхождение часов клиента и сервера
	PastBookingTolerance = time.Minute
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
