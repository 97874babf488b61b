// Package simpletxmanager транзакционный менеджер поверх чистого *sql.DB.
// Используется, когда метрики выключены; интерфейс совпадает с pkg/txmanager
package simpletxmanager

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
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"

	defaultLockTimeout = 3 * time.Second
	retryBackoff       = 100 * time.Millisecond
)

var (
	// ErrBeginTx возвращается при ошибке открытия транзакции
	ErrBeginTx = errors.New("simpletxmanager: failed to begin transaction")

	// ErrCommitTx возвращается при ошибке фиксации транзакции
	ErrCommitTx = errors.New("simpletxmanager: failed to commit transaction")
)

// TransactionManager управляет транзакциями без сбора метрик
type TransactionManager struct {
	db          *sql.DB
	lockTimeout time.Duration
}

// Option настройка транзакционного менеджера
type Option func(*TransactionManager)

// WithLockTimeout ограничивает ожидание блокировок внутри сериализуемой транзакции
func WithLockTimeout(d time.Duration) Option {
	return func(m *TransactionManager) {
		if d > 0 {
			m.lockTimeout = d
		}
	}
}

// NewTransactionManager создает транзакционный менеджер
func NewTransactionManager(db *sql.DB, opts ...Option) *TransactionManager {
	m := &TransactionManager{
		db:          db,
		lockTimeout: defaultLockTimeout,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Do выполняет fn в транзакции с уровнем изоляции по умолчанию
func (m *TransactionManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{}, fn)
}

// DoSerializable выполняет fn в сериализуемой транзакции с одним повтором
// при ошибке сериализации или дедлоке
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

	wrapped := &dbmetrics.SqlTxWrapper{Tx: tx}

	if opts.Isolation == sql.LevelSerializable {
		if _, err := tx.ExecContext(ctx, fmt.Sprintf("SET LOCAL lock_timeout = '%dms'", m.lockTimeout.Milliseconds())); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("%w: set lock_timeout: %v", ErrBeginTx, err)
		}
	}

	txCtx := dbmetrics.WithTx(ctx, wrapped)

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
