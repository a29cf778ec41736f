// Package dbmetrics wraps *sql.DB with prometheus instrumentation and
// carries active transactions through context so repositories stay unaware
// of transaction management.
package dbmetrics

import (
	"context"
	"database/sql"
	"time"

	"github.com/CsIsLab17/smart-lab-booking/pkg/metrics"
)

// DBExecutor is the query surface repositories depend on.
// Satisfied by *sql.DB, *sql.Tx and *dbmetrics.DB.
type DBExecutor interface {
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

// TxExecutor is a DBExecutor bound to an open transaction.
type TxExecutor interface {
	DBExecutor
	Commit() error
	Rollback() error
}

type ctxKey struct{}

// ContextWithTx returns a context carrying the transaction executor.
func ContextWithTx(ctx context.Context, tx TxExecutor) context.Context {
	return context.WithValue(ctx, ctxKey{}, tx)
}

// GetExecutor returns the transaction from ctx when present, otherwise the
// fallback executor.
func GetExecutor(ctx context.Context, fallback DBExecutor) DBExecutor {
	if tx, ok := ctx.Value(ctxKey{}).(TxExecutor); ok {
		return tx
	}
	return fallback
}

// IsInTransaction reports whether ctx carries an active transaction.
func IsInTransaction(ctx context.Context) bool {
	_, ok := ctx.Value(ctxKey{}).(TxExecutor)
	return ok
}

// DB instruments a *sql.DB with query metrics.
type DB struct {
	db      *sql.DB
	metrics *metrics.Metrics
}

const defaultPoolPollInterval = 15 * time.Second

// WrapWithDefault wraps db and starts a goroutine publishing connection-pool
// gauges for the named database until stopCh is closed.
func WrapWithDefault(db *sql.DB, m *metrics.Metrics, name string, stopCh <-chan struct{}) *DB {
	wrapped := &DB{db: db, metrics: m}

	go func() {
		ticker := time.NewTicker(defaultPoolPollInterval)
		defer ticker.Stop()
		for {
			select {
			case <-stopCh:
				return
			case <-ticker.C:
				stats := db.Stats()
				m.DBConnsOpen.WithLabelValues(name).Set(float64(stats.OpenConnections))
				m.DBConnsIdle.WithLabelValues(name).Set(float64(stats.Idle))
				m.DBConnsInUse.WithLabelValues(name).Set(float64(stats.InUse))
			}
		}
	}()

	return wrapped
}

func (d *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := d.db.QueryRowContext(ctx, query, args...)
	d.metrics.ObserveQuery(queryOperation(query), "ok", time.Since(start))
	return row
}

func (d *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := d.db.QueryContext(ctx, query, args...)
	d.metrics.ObserveQuery(queryOperation(query), outcome(err), time.Since(start))
	return rows, err
}

func (d *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	res, err := d.db.ExecContext(ctx, query, args...)
	d.metrics.ObserveQuery(queryOperation(query), outcome(err), time.Since(start))
	return res, err
}

// BeginTx opens an instrumented transaction.
func (d *DB) BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error) {
	tx, err := d.db.BeginTx(ctx, opts)
	if err != nil {
		return nil, err
	}
	return &metricTx{tx: tx, metrics: d.metrics}, nil
}

type metricTx struct {
	tx      *sql.Tx
	metrics *metrics.Metrics
}

func (t *metricTx) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := t.tx.QueryRowContext(ctx, query, args...)
	t.metrics.ObserveQuery(queryOperation(query), "ok", time.Since(start))
	return row
}

func (t *metricTx) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := t.tx.QueryContext(ctx, query, args...)
	t.metrics.ObserveQuery(queryOperation(query), outcome(err), time.Since(start))
	return rows, err
}

func (t *metricTx) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	res, err := t.tx.ExecContext(ctx, query, args...)
	t.metrics.ObserveQuery(queryOperation(query), outcome(err), time.Since(start))
	return res, err
}

func (t *metricTx) Commit() error   { return t.tx.Commit() }
func (t *metricTx) Rollback() error { return t.tx.Rollback() }

func outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

// queryOperation extracts the leading SQL verb for the operation label.
func queryOperation(query string) string {
	for i := 0; i < len(query); i++ {
		if query[i] == ' ' || query[i] == '\n' || query[i] == '\t' {
			return query[:i]
		}
	}
	return query
}
