// Package repository handles all interactions with the database.
//
// It contains raw SQL queries and methods to fetch, persist,
// or update data, abstracting SQL logic away from the service layer.
// Every method checks a connection out of the provider for the
// duration of one statement and releases it on return.
package repository

import (
	"errors"

	"github.com/deppfellow/fitness-center/internal/errs"
	"github.com/jackc/pgx/v5"
)

// Error codes of missing records.
var (
	CodeCustomerNotFound = "CUSTOMER_NOT_FOUND"
	CodeWorkoutNotFound  = "WORKOUT_NOT_FOUND"
)

const (
	customerNotFoundMessage = "Member was not found."
	workoutNotFoundMessage  = "Workout was not found."
)

func customerNotFound() error {
	return errs.NewNotFoundError(customerNotFoundMessage, true, &CodeCustomerNotFound)
}

func workoutNotFound() error {
	return errs.NewNotFoundError(workoutNotFoundMessage, true, &CodeWorkoutNotFound)
}

// notFoundOr maps pgx.ErrNoRows to notFound and returns other errors as they are.
func notFoundOr(err error, notFound func() error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return notFound()
	}
	return err
}
