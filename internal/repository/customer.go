package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/fitness-center/internal/database"
	"github.com/deppfellow/fitness-center/internal/model/customer"
	"github.com/jackc/pgx/v5"
)

type CustomerRepository struct {
	db database.Provider
}

func NewCustomerRepository(db database.Provider) *CustomerRepository {
	return &CustomerRepository{db: db}
}

// Create inserts a customer and returns its store-generated id.
func (r *CustomerRepository) Create(ctx context.Context, in *customer.Input) (int64, error) {
	stmt := `
		INSERT INTO
			customer (customer_name, email, phone)
		VALUES
			($1, $2, $3)
		RETURNING
			id
	`

	return database.WithConnResult(ctx, r.db, func(conn database.Conn) (int64, error) {
		var id int64
		if err := conn.QueryRow(ctx, stmt, in.Name(), in.Email, in.Phone).Scan(&id); err != nil {
			return 0, fmt.Errorf("failed to insert customer: %w", err)
		}
		return id, nil
	})
}

// List returns every customer ordered by id. An empty table yields an
// empty, non-nil slice.
func (r *CustomerRepository) List(ctx context.Context) ([]customer.Customer, error) {
	stmt := `
		SELECT
			id, customer_name, email, phone
		FROM
			customer
		ORDER BY
			id
	`

	return database.WithConnResult(ctx, r.db, func(conn database.Conn) ([]customer.Customer, error) {
		rows, err := conn.Query(ctx, stmt)
		if err != nil {
			return nil, fmt.Errorf("failed to query customers: %w", err)
		}

		customers, err := pgx.CollectRows(rows, pgx.RowToStructByName[customer.Customer])
		if err != nil {
			return nil, fmt.Errorf("failed to collect customers: %w", err)
		}
		return customers, nil
	})
}

// GetByID returns the customer with the given id or a 404 error.
func (r *CustomerRepository) GetByID(ctx context.Context, id int64) (*customer.Customer, error) {
	stmt := `
		SELECT
			id, customer_name, email, phone
		FROM
			customer
		WHERE
			id = $1
	`

	return database.WithConnResult(ctx, r.db, func(conn database.Conn) (*customer.Customer, error) {
		rows, err := conn.Query(ctx, stmt, id)
		if err != nil {
			return nil, fmt.Errorf("failed to query customer %d: %w", id, err)
		}

		c, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByName[customer.Customer])
		if err != nil {
			return nil, notFoundOr(err, customerNotFound)
		}
		return c, nil
	})
}

// Update overwrites every writable column of customer id.
//
// Existence check and write are the same statement, so a concurrent
// delete can never be overwritten into a phantom success.
func (r *CustomerRepository) Update(ctx context.Context, id int64, in *customer.Input) error {
	stmt := `
		UPDATE customer
		SET
			customer_name = $1,
			email = $2,
			phone = $3
		WHERE
			id = $4
	`

	return database.WithConn(ctx, r.db, func(conn database.Conn) error {
		tag, err := conn.Exec(ctx, stmt, in.Name(), in.Email, in.Phone, id)
		if err != nil {
			return fmt.Errorf("failed to update customer %d: %w", id, err)
		}
		if tag.RowsAffected() == 0 {
			return customerNotFound()
		}
		return nil
	})
}

// Delete removes customer id. Its workouts go with it.
func (r *CustomerRepository) Delete(ctx context.Context, id int64) error {
	stmt := `
		DELETE FROM customer
		WHERE
			id = $1
	`

	return database.WithConn(ctx, r.db, func(conn database.Conn) error {
		tag, err := conn.Exec(ctx, stmt, id)
		if err != nil {
			return fmt.Errorf("failed to delete customer %d: %w", id, err)
		}
		if tag.RowsAffected() == 0 {
			return customerNotFound()
		}
		return nil
	})
}
