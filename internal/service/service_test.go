package service

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/deppfellow/fitness-center/internal/database"
	"github.com/deppfellow/fitness-center/internal/lib/job"
	"github.com/deppfellow/fitness-center/internal/model/customer"
	"github.com/deppfellow/fitness-center/internal/model/workout"
	"github.com/deppfellow/fitness-center/internal/repository"
	"github.com/hibiken/asynq"
	"github.com/labstack/echo/v4"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type releasingConn struct {
	pgxmock.PgxConnIface
}

func (releasingConn) Release() {}

type mockProvider struct {
	mock pgxmock.PgxConnIface
}

func (p *mockProvider) Acquire(context.Context) (database.Conn, error) {
	return releasingConn{p.mock}, nil
}

func newMock(t *testing.T) (*repository.Repositories, pgxmock.PgxConnIface) {
	t.Helper()
	mock, err := pgxmock.NewConn()
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, mock.ExpectationsWereMet()) })
	return repository.NewRepositories(&mockProvider{mock: mock}), mock
}

type recordingEnqueuer struct {
	tasks []*asynq.Task
	err   error
}

func (r *recordingEnqueuer) EnqueueContext(_ context.Context, task *asynq.Task, _ ...asynq.Option) (*asynq.TaskInfo, error) {
	r.tasks = append(r.tasks, task)
	if r.err != nil {
		return nil, r.err
	}
	return &asynq.TaskInfo{ID: "task-1", Type: task.Type()}, nil
}

func newEchoContext() echo.Context {
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	return echo.New().NewContext(req, httptest.NewRecorder())
}

func strPtr(s string) *string { return &s }

func TestCreateCustomerQueuesWelcomeEmail(t *testing.T) {
	repos, mock := newMock(t)
	jobs := &recordingEnqueuer{}
	svc := NewCustomerService(repos.Customer, jobs)

	mock.ExpectQuery(`INSERT INTO\s+customer`).
		WithArgs("Alice", strPtr("a@x.io"), (*string)(nil)).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(1)))

	id, err := svc.CreateCustomer(newEchoContext(), &customer.Input{CustomerName: strPtr("Alice"), Email: strPtr("a@x.io")})

	require.NoError(t, err)
	assert.Equal(t, int64(1), id)
	require.Len(t, jobs.tasks, 1)
	assert.Equal(t, job.TaskWelcome, jobs.tasks[0].Type())
	assert.JSONEq(t, `{"to":"a@x.io","customer_name":"Alice"}`, string(jobs.tasks[0].Payload()))
}

func TestCreateCustomerWithoutEmailQueuesNothing(t *testing.T) {
	repos, mock := newMock(t)
	jobs := &recordingEnqueuer{}
	svc := NewCustomerService(repos.Customer, jobs)

	mock.ExpectQuery(`INSERT INTO\s+customer`).
		WithArgs("Bob", (*string)(nil), (*string)(nil)).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(2)))

	_, err := svc.CreateCustomer(newEchoContext(), &customer.Input{CustomerName: strPtr("Bob")})

	require.NoError(t, err)
	assert.Empty(t, jobs.tasks)
}

func TestEnqueueFailureDoesNotFailCreate(t *testing.T) {
	repos, mock := newMock(t)
	jobs := &recordingEnqueuer{err: errors.New("redis down")}
	svc := NewWorkoutService(repos.Workout, jobs)

	mock.ExpectQuery(`INSERT INTO\s+workouts`).
		WithArgs("s", "e", "cardio", int64(1)).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(5)))

	in := &workout.Input{
		WorkoutStartTime: strPtr("s"),
		WorkoutEndTime:   strPtr("e"),
		WorkoutType:      strPtr("cardio"),
	}
	customerID := int64(1)
	in.CustomerID = &customerID

	id, err := svc.CreateWorkout(newEchoContext(), in)

	require.NoError(t, err)
	assert.Equal(t, int64(5), id)
	require.Len(t, jobs.tasks, 1)
	assert.Equal(t, job.TaskWorkoutScheduled, jobs.tasks[0].Type())
}

func TestCreateWithoutQueue(t *testing.T) {
	repos, mock := newMock(t)
	svc := NewCustomerService(repos.Customer, nil)

	mock.ExpectQuery(`INSERT INTO\s+customer`).
		WithArgs("Alice", strPtr("a@x.io"), (*string)(nil)).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(1)))

	_, err := svc.CreateCustomer(newEchoContext(), &customer.Input{CustomerName: strPtr("Alice"), Email: strPtr("a@x.io")})
	assert.NoError(t, err)
}

func TestCreateFailureQueuesNothing(t *testing.T) {
	repos, mock := newMock(t)
	jobs := &recordingEnqueuer{}
	svc := NewCustomerService(repos.Customer, jobs)

	mock.ExpectQuery(`INSERT INTO\s+customer`).
		WithArgs("Alice", strPtr("a@x.io"), (*string)(nil)).
		WillReturnError(errors.New("boom"))

	_, err := svc.CreateCustomer(newEchoContext(), &customer.Input{CustomerName: strPtr("Alice"), Email: strPtr("a@x.io")})

	assert.Error(t, err)
	assert.Empty(t, jobs.tasks)
}

func TestDeleteWorkout(t *testing.T) {
	repos, mock := newMock(t)
	svc := NewWorkoutService(repos.Workout, nil)

	mock.ExpectExec(`DELETE FROM workouts`).
		WithArgs(int64(4)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	assert.NoError(t, svc.DeleteWorkout(newEchoContext(), 4))
}
