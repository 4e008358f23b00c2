package database

import (
	"context"
	"errors"
	"testing"

	"github.com/deppfellow/fitness-center/internal/sqlerr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingConn struct {
	released int
}

func (c *countingConn) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	return pgconn.NewCommandTag("SELECT 1"), nil
}

func (c *countingConn) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return nil, errors.New("not implemented")
}

func (c *countingConn) QueryRow(context.Context, string, ...any) pgx.Row {
	return nil
}

func (c *countingConn) Release() {
	c.released++
}

type stubProvider struct {
	conn *countingConn
	err  error
}

func (p *stubProvider) Acquire(context.Context) (Conn, error) {
	if p.err != nil {
		return nil, p.err
	}
	return p.conn, nil
}

func TestWithConnReleasesOnSuccess(t *testing.T) {
	p := &stubProvider{conn: &countingConn{}}

	err := WithConn(context.Background(), p, func(conn Conn) error {
		_, err := conn.Exec(context.Background(), "SELECT 1")
		return err
	})

	require.NoError(t, err)
	assert.Equal(t, 1, p.conn.released)
}

func TestWithConnReleasesOnError(t *testing.T) {
	p := &stubProvider{conn: &countingConn{}}
	boom := errors.New("boom")

	err := WithConn(context.Background(), p, func(Conn) error { return boom })

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, p.conn.released)
}

func TestWithConnReleasesOnPanic(t *testing.T) {
	p := &stubProvider{conn: &countingConn{}}

	assert.Panics(t, func() {
		_ = WithConn(context.Background(), p, func(Conn) error { panic("scan exploded") })
	})
	assert.Equal(t, 1, p.conn.released)
}

func TestWithConnAcquireFailure(t *testing.T) {
	p := &stubProvider{err: sqlerr.ErrConnectionUnavailable}
	called := false

	err := WithConn(context.Background(), p, func(Conn) error {
		called = true
		return nil
	})

	assert.ErrorIs(t, err, sqlerr.ErrConnectionUnavailable)
	assert.False(t, called)
}

func TestWithConnResult(t *testing.T) {
	p := &stubProvider{conn: &countingConn{}}

	id, err := WithConnResult(context.Background(), p, func(Conn) (int64, error) {
		return 42, nil
	})

	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
	assert.Equal(t, 1, p.conn.released)
}
