//go:build integration

package repository

import (
	"context"
	"testing"

	"github.com/deppfellow/fitness-center/internal/database"
	"github.com/deppfellow/fitness-center/internal/sqlerr"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	postgrescontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
)

func startPostgres(t *testing.T) *database.Database {
	t.Helper()
	ctx := context.Background()

	pg, err := postgrescontainer.Run(ctx, "postgres:16-alpine",
		postgrescontainer.WithDatabase("fitness_center"),
		postgrescontainer.WithUsername("gym"),
		postgrescontainer.WithPassword("gym"),
		postgrescontainer.BasicWaitStrategies(),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pg.Terminate(ctx) })

	connStr, err := pg.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	logger := zerolog.Nop()
	require.NoError(t, database.Migrate(ctx, &logger, connStr))

	pool, err := pgxpool.New(ctx, connStr)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	return &database.Database{Pool: pool}
}

func TestRepositoriesAgainstPostgres(t *testing.T) {
	ctx := context.Background()
	repos := NewRepositories(startPostgres(t))

	customers, err := repos.Customer.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, customers)

	aliceID, err := repos.Customer.Create(ctx, customerInput("Alice", strPtr("a@x.io"), nil))
	require.NoError(t, err)
	bobID, err := repos.Customer.Create(ctx, customerInput("Bob", nil, strPtr("555")))
	require.NoError(t, err)
	assert.Less(t, aliceID, bobID)

	alice, err := repos.Customer.GetByID(ctx, aliceID)
	require.NoError(t, err)
	assert.Equal(t, "Alice", alice.CustomerName)
	assert.Nil(t, alice.Phone)

	require.NoError(t, repos.Customer.Update(ctx, aliceID, customerInput("Alice B", strPtr("b@x.io"), nil)))
	alice, err = repos.Customer.GetByID(ctx, aliceID)
	require.NoError(t, err)
	assert.Equal(t, "Alice B", alice.CustomerName)
	assert.Equal(t, "b@x.io", *alice.Email)

	workoutID, err := repos.Workout.Create(ctx, workoutInput("2024-05-01 09:00", "2024-05-01 10:00", "cardio", aliceID))
	require.NoError(t, err)

	require.NoError(t, repos.Workout.Update(ctx, workoutID, workoutInput("2024-05-01 09:00", "2024-05-01 10:00", "strength", bobID)))
	w, err := repos.Workout.GetByID(ctx, workoutID)
	require.NoError(t, err)
	assert.Equal(t, "strength", w.WorkoutType)
	assert.Equal(t, bobID, w.CustomerID)

	_, err = repos.Workout.Create(ctx, workoutInput("s", "e", "yoga", 999999))
	assert.Equal(t, sqlerr.ForeignKeyViolation, sqlerr.ErrCode(err))

	// Deleting a customer removes its workouts.
	require.NoError(t, repos.Customer.Delete(ctx, bobID))
	_, err = repos.Workout.GetByID(ctx, workoutID)
	requireNotFound(t, err, CodeWorkoutNotFound)

	err = repos.Customer.Delete(ctx, bobID)
	requireNotFound(t, err, CodeCustomerNotFound)

	customers, err = repos.Customer.List(ctx)
	require.NoError(t, err)
	require.Len(t, customers, 1)
	assert.Equal(t, aliceID, customers[0].ID)
}
