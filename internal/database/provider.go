package database

import (
	"context"
	"fmt"

	"github.com/deppfellow/fitness-center/internal/sqlerr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Conn is a single connection checked out of the pool.
//
// *pgxpool.Conn satisfies it. Statements run in autocommit mode, so
// every successful Exec is already committed when it returns.
type Conn interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Release()
}

// Provider hands out connections. Acquire errors must wrap
// sqlerr.ErrConnectionUnavailable.
type Provider interface {
	Acquire(ctx context.Context) (Conn, error)
}

// Acquire checks a connection out of the pool.
func (db *Database) Acquire(ctx context.Context) (Conn, error) {
	conn, err := db.Pool.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", sqlerr.ErrConnectionUnavailable, err)
	}
	return conn, nil
}

// WithConn runs fn on a connection acquired from p.
//
// The connection is released when fn returns, whatever the outcome.
func WithConn(ctx context.Context, p Provider, fn func(conn Conn) error) error {
	conn, err := p.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	return fn(conn)
}

// WithConnResult is WithConn for functions that produce a value.
func WithConnResult[T any](ctx context.Context, p Provider, fn func(conn Conn) (T, error)) (T, error) {
	var result T
	err := WithConn(ctx, p, func(conn Conn) error {
		var err error
		result, err = fn(conn)
		return err
	})
	return result, err
}
