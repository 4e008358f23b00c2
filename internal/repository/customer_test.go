package repository

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/deppfellow/fitness-center/internal/errs"
	"github.com/deppfellow/fitness-center/internal/model/customer"
	"github.com/deppfellow/fitness-center/internal/sqlerr"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var customerColumns = []string{"id", "customer_name", "email", "phone"}

func strPtr(s string) *string { return &s }

func customerInput(name string, email, phone *string) *customer.Input {
	return &customer.Input{CustomerName: &name, Email: email, Phone: phone}
}

func requireNotFound(t *testing.T, err error, code string) {
	t.Helper()
	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
	assert.Equal(t, code, httpErr.Code)
}

func TestCustomerCreate(t *testing.T) {
	p := newMockProvider(t)
	repo := NewCustomerRepository(p)

	email := strPtr("a@x.io")
	p.mock.ExpectQuery(`INSERT INTO\s+customer \(customer_name, email, phone\)`).
		WithArgs("Alice", email, (*string)(nil)).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(1)))

	id, err := repo.Create(context.Background(), customerInput("Alice", email, nil))

	require.NoError(t, err)
	assert.Equal(t, int64(1), id)
	assert.Equal(t, 1, p.acquired)
}

func TestCustomerCreateStoreFailure(t *testing.T) {
	p := newMockProvider(t)
	repo := NewCustomerRepository(p)

	p.mock.ExpectQuery(`INSERT INTO\s+customer`).
		WithArgs("Alice", (*string)(nil), (*string)(nil)).
		WillReturnError(errors.New("disk full"))

	_, err := repo.Create(context.Background(), customerInput("Alice", nil, nil))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestCustomerListOrdersByID(t *testing.T) {
	p := newMockProvider(t)
	repo := NewCustomerRepository(p)

	p.mock.ExpectQuery(`SELECT\s+id, customer_name, email, phone\s+FROM\s+customer\s+ORDER BY\s+id`).
		WillReturnRows(pgxmock.NewRows(customerColumns).
			AddRow(int64(1), "Alice", strPtr("a@x.io"), nil).
			AddRow(int64(2), "Bob", nil, strPtr("555")))

	customers, err := repo.List(context.Background())

	require.NoError(t, err)
	require.Len(t, customers, 2)
	assert.Equal(t, customer.Customer{ID: 1, CustomerName: "Alice", Email: strPtr("a@x.io")}, customers[0])
	assert.Equal(t, customer.Customer{ID: 2, CustomerName: "Bob", Phone: strPtr("555")}, customers[1])
}

func TestCustomerListEmpty(t *testing.T) {
	p := newMockProvider(t)
	repo := NewCustomerRepository(p)

	p.mock.ExpectQuery(`FROM\s+customer`).WillReturnRows(pgxmock.NewRows(customerColumns))

	customers, err := repo.List(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, customers)
	assert.Empty(t, customers)
}

func TestCustomerGetByID(t *testing.T) {
	p := newMockProvider(t)
	repo := NewCustomerRepository(p)

	p.mock.ExpectQuery(`WHERE\s+id = \$1`).
		WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows(customerColumns).AddRow(int64(1), "Alice", nil, nil))

	c, err := repo.GetByID(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, &customer.Customer{ID: 1, CustomerName: "Alice"}, c)
}

func TestCustomerGetByIDNotFound(t *testing.T) {
	p := newMockProvider(t)
	repo := NewCustomerRepository(p)

	p.mock.ExpectQuery(`WHERE\s+id = \$1`).
		WithArgs(int64(999)).
		WillReturnRows(pgxmock.NewRows(customerColumns))

	_, err := repo.GetByID(context.Background(), 999)

	requireNotFound(t, err, CodeCustomerNotFound)
	assert.Equal(t, 1, p.released)
}

func TestCustomerUpdate(t *testing.T) {
	p := newMockProvider(t)
	repo := NewCustomerRepository(p)

	p.mock.ExpectExec(`UPDATE customer\s+SET\s+customer_name = \$1,\s+email = \$2,\s+phone = \$3\s+WHERE\s+id = \$4`).
		WithArgs("Alice B", strPtr("b@x.io"), (*string)(nil), int64(1)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.Update(context.Background(), 1, customerInput("Alice B", strPtr("b@x.io"), nil))

	assert.NoError(t, err)
}

func TestCustomerUpdateMissing(t *testing.T) {
	p := newMockProvider(t)
	repo := NewCustomerRepository(p)

	p.mock.ExpectExec(`UPDATE customer`).
		WithArgs("Ghost", (*string)(nil), (*string)(nil), int64(999)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := repo.Update(context.Background(), 999, customerInput("Ghost", nil, nil))

	requireNotFound(t, err, CodeCustomerNotFound)
}

func TestCustomerDelete(t *testing.T) {
	tests := []struct {
		affected int64
		wantErr  bool
	}{
		{affected: 1},
		{affected: 0, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("affected=%d", tt.affected), func(t *testing.T) {
			p := newMockProvider(t)
			repo := NewCustomerRepository(p)

			p.mock.ExpectExec(`DELETE FROM customer\s+WHERE\s+id = \$1`).
				WithArgs(int64(3)).
				WillReturnResult(pgxmock.NewResult("DELETE", tt.affected))

			err := repo.Delete(context.Background(), 3)

			if tt.wantErr {
				requireNotFound(t, err, CodeCustomerNotFound)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestCustomerConnectionUnavailable(t *testing.T) {
	p := newMockProvider(t)
	p.err = fmt.Errorf("%w: dial tcp: connection refused", sqlerr.ErrConnectionUnavailable)
	repo := NewCustomerRepository(p)

	_, err := repo.List(context.Background())

	assert.ErrorIs(t, err, sqlerr.ErrConnectionUnavailable)
	assert.Zero(t, p.acquired)
}
