package slot

import (
	"github.com/m04kA/DORM-ReservationService/pkg/dbmetrics"
)

// DBExecutor интерфейс для выполнения запросов к БД
type DBExecutor = dbmetrics.DBExecutor

// TxExecutor интерфейс для работы с транзакциями
type TxExecutor = dbmetrics.TxExecutor
