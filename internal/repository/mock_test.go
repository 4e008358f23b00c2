package repository

import (
	"context"
	"testing"

	"github.com/deppfellow/fitness-center/internal/database"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/require"
)

// mockConn adds Release to a pgxmock connection.
type mockConn struct {
	pgxmock.PgxConnIface
	provider *mockProvider
}

func (c *mockConn) Release() {
	c.provider.released++
}

// mockProvider hands out the same pgxmock connection and counts
// checkouts and releases.
type mockProvider struct {
	mock     pgxmock.PgxConnIface
	acquired int
	released int
	err      error
}

func newMockProvider(t *testing.T) *mockProvider {
	t.Helper()

	mock, err := pgxmock.NewConn()
	require.NoError(t, err)

	p := &mockProvider{mock: mock}
	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		require.Equal(t, p.acquired, p.released, "every acquired connection must be released")
	})
	return p
}

func (p *mockProvider) Acquire(context.Context) (database.Conn, error) {
	if p.err != nil {
		return nil, p.err
	}
	p.acquired++
	return &mockConn{PgxConnIface: p.mock, provider: p}, nil
}
