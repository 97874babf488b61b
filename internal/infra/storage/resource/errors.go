package resource

import "errors"

var (
	// ErrResourceNotFound ресурс не найден
	ErrResourceNotFound = errors.New("storage/resource: resource not found")
	// ErrBuildQuery ошибка построения SQL запроса
	ErrBuildQuery = errors.New("storage/resource: failed to build query")
	// ErrExecQuery ошибка выполнения SQL запроса
	ErrExecQuery = errors.New("storage/resource: failed to execute query")
	// ErrScanRow ошибка сканирования строки результата
	ErrScanRow = errors.New("storage/resource: failed to scan row")
)
