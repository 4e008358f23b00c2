package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/fitness-center/internal/database"
	"github.com/deppfellow/fitness-center/internal/model/workout"
	"github.com/jackc/pgx/v5"
)

type WorkoutRepository struct {
	db database.Provider
}

func NewWorkoutRepository(db database.Provider) *WorkoutRepository {
	return &WorkoutRepository{db: db}
}

// Create schedules a workout. A customer_id with no matching customer
// fails on the foreign key.
func (r *WorkoutRepository) Create(ctx context.Context, in *workout.Input) (int64, error) {
	stmt := `
		INSERT INTO
			workouts (workout_start_time, workout_end_time, workout_type, customer_id)
		VALUES
			($1, $2, $3, $4)
		RETURNING
			id
	`
	start, end, workoutType, customerID := in.Values()

	return database.WithConnResult(ctx, r.db, func(conn database.Conn) (int64, error) {
		var id int64
		if err := conn.QueryRow(ctx, stmt, start, end, workoutType, customerID).Scan(&id); err != nil {
			return 0, fmt.Errorf("failed to insert workout: %w", err)
		}
		return id, nil
	})
}

func (r *WorkoutRepository) List(ctx context.Context) ([]workout.Workout, error) {
	stmt := `
		SELECT
			id, workout_start_time, workout_end_time, workout_type, customer_id
		FROM
			workouts
		ORDER BY
			id
	`

	return database.WithConnResult(ctx, r.db, func(conn database.Conn) ([]workout.Workout, error) {
		rows, err := conn.Query(ctx, stmt)
		if err != nil {
			return nil, fmt.Errorf("failed to query workouts: %w", err)
		}

		workouts, err := pgx.CollectRows(rows, pgx.RowToStructByName[workout.Workout])
		if err != nil {
			return nil, fmt.Errorf("failed to collect workouts: %w", err)
		}
		return workouts, nil
	})
}

func (r *WorkoutRepository) GetByID(ctx context.Context, id int64) (*workout.Workout, error) {
	stmt := `
		SELECT
			id, workout_start_time, workout_end_time, workout_type, customer_id
		FROM
			workouts
		WHERE
			id = $1
	`

	return database.WithConnResult(ctx, r.db, func(conn database.Conn) (*workout.Workout, error) {
		rows, err := conn.Query(ctx, stmt, id)
		if err != nil {
			return nil, fmt.Errorf("failed to query workout %d: %w", id, err)
		}

		w, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByName[workout.Workout])
		if err != nil {
			return nil, notFoundOr(err, workoutNotFound)
		}
		return w, nil
	})
}

// Update rewrites all four columns of workout id, customer_id included.
func (r *WorkoutRepository) Update(ctx context.Context, id int64, in *workout.Input) error {
	stmt := `
		UPDATE workouts
		SET
			workout_start_time = $1,
			workout_end_time = $2,
			workout_type = $3,
			customer_id = $4
		WHERE
			id = $5
	`
	start, end, workoutType, customerID := in.Values()

	return database.WithConn(ctx, r.db, func(conn database.Conn) error {
		tag, err := conn.Exec(ctx, stmt, start, end, workoutType, customerID, id)
		if err != nil {
			return fmt.Errorf("failed to update workout %d: %w", id, err)
		}
		if tag.RowsAffected() == 0 {
			return workoutNotFound()
		}
		return nil
	})
}

func (r *WorkoutRepository) Delete(ctx context.Context, id int64) error {
	stmt := `
		DELETE FROM workouts
		WHERE
			id = $1
	`

	return database.WithConn(ctx, r.db, func(conn database.Conn) error {
		tag, err := conn.Exec(ctx, stmt, id)
		if err != nil {
			return fmt.Errorf("failed to delete workout %d: %w", id, err)
		}
		if tag.RowsAffected() == 0 {
			return workoutNotFound()
		}
		return nil
	})
}
