// Package txmanager транзакционный менеджер поверх dbmetrics.DB.
// Кладет открытую транзакцию в context, чтобы репозитории прозрачно
// выполняли свои запросы внутри неё (см. dbmetrics.GetExecutor)
package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/m04kA/DORM-ReservationService/pkg/dbmetrics"
)

const (
	// Коды ошибок PostgreSQL, при которых сериализуемую транзакцию безопасно повторить
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"

	defaultLockTimeout = 3 * time.Second
	retryBackoff       = 100 * time.Millisecond
)

var (
	// ErrBeginTx возвращается при ошибке открытия транзакции
	ErrBeginTx = errors.New("txmanager: failed to begin transaction")

	// ErrCommitTx возвращается при ошибке фиксации транзакции
	ErrCommitTx = errors.New("txmanager: failed to commit transaction")
)

// TransactionManager управляет транзакциями с разными уровнями изоляции
type TransactionManager struct {
	db          *dbmetrics.DB
	lockTimeout time.Duration
}

// Option настройка транзакционного менеджера
type Option func(*TransactionManager)

// WithLockTimeout ограничивает ожидание блокировок внутри сериализуемой
// транзакции. По истечении таймаута PostgreSQL прерывает запрос, и запрос
// пользователя завершается конфликтом, а не висит неограниченно
func WithLockTimeout(d time.Duration) Option {
	return func(m *TransactionManager) {
		if d > 0 {
			m.lockTimeout = d
		}
	}
}

// NewTransactionManager создает транзакционный менеджер
func NewTransactionManager(db *dbmetrics.DB, opts ...Option) *TransactionManager {
	m := &TransactionManager{
		db:          db,
		lockTimeout: defaultLockTimeout,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Do выполняет fn в транзакции с уровнем изоляции по умолчанию (Read Committed)
func (m *TransactionManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{}, fn)
}

// DoSerializable выполняет fn в сериализуемой транзакции.
// Ошибки сериализации (40001) и дедлоки (40P01) повторяются один раз:
// это ожидаемые исходы конкурентного бронирования, а не сбой сервиса
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	err := m.run(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable}, fn)
	if err == nil || !isRetryable(err) {
		return err
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(retryBackoff):
	}

	return m.run(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable}, fn)
}

// DoReadOnly выполняет fn в read-only транзакции
func (m *TransactionManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{ReadOnly: true}, fn)
}

func (m *TransactionManager) run(ctx context.Context, opts *sql.TxOptions, fn func(ctx context.Context) error) error {
	tx, err := m.db.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBeginTx, err)
	}

	// SET LOCAL действует до конца транзакции и откатывается вместе с ней
	if opts.Isolation == sql.LevelSerializable {
		if _, err := tx.ExecContext(ctx, fmt.Sprintf("SET LOCAL lock_timeout = '%dms'", m.lockTimeout.Milliseconds())); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("%w: set lock_timeout: %v", ErrBeginTx, err)
		}
	}

	txCtx := dbmetrics.WithTx(ctx, tx)

	if err := fn(txCtx); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("%w: %w", ErrCommitTx, err)
	}

	return nil
}

func isRetryable(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	switch string(pqErr.Code) {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}
