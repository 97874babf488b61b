package slot

import "errors"

var (
	// ErrSlotNotFound слот не найден
	ErrSlotNotFound = errors.New("storage/slot: slot not found")
	// ErrSlotAlreadyBooked слот уже занят другим пользователем
	ErrSlotAlreadyBooked = errors.New("storage/slot: slot already booked")
	// ErrDuplicateSlot слот с таким временем уже существует у ресурса
	ErrDuplicateSlot = errors.New("storage/slot: duplicate slot for resource and start time")
	// ErrLockTimeout блокировка слота не получена за отведённый lock_timeout
	ErrLockTimeout = errors.New("storage/slot: lock acquisition timed out")
	// ErrBuildQuery ошибка построения SQL запроса
	ErrBuildQuery = errors.New("storage/slot: failed to build query")
	// ErrExecQuery ошибка выполнения SQL запроса
	ErrExecQuery = errors.New("storage/slot: failed to execute query")
	// ErrScanRow ошибка сканирования строки результата
	ErrScanRow = errors.New("storage/slot: failed to scan row")
)
