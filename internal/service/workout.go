package service

import (
	"github.com/deppfellow/fitness-center/internal/lib/job"
	"github.com/deppfellow/fitness-center/internal/middleware"
	"github.com/deppfellow/fitness-center/internal/model/workout"
	"github.com/deppfellow/fitness-center/internal/observability"
	"github.com/deppfellow/fitness-center/internal/repository"
	"github.com/hibiken/asynq"
	"github.com/labstack/echo/v4"
)

const workoutEntity = "workout"

type WorkoutService struct {
	repo *repository.WorkoutRepository
	jobs TaskEnqueuer
}

func NewWorkoutService(repo *repository.WorkoutRepository, jobs TaskEnqueuer) *WorkoutService {
	return &WorkoutService{repo: repo, jobs: jobs}
}

// CreateWorkout schedules a workout and queues its confirmation email.
func (s *WorkoutService) CreateWorkout(c echo.Context, in *workout.Input) (int64, error) {
	logger := middleware.GetLogger(c)
	ctx := c.Request().Context()

	id, err := s.repo.Create(ctx, in)
	observability.RecordStoreOperation(workoutEntity, "create", err)
	if err != nil {
		return 0, err
	}

	start, end, workoutType, customerID := in.Values()
	logger.Info().Int64("workout_id", id).Int64("customer_id", customerID).Msg("workout scheduled")

	enqueue(ctx, logger, s.jobs, func() (*asynq.Task, error) {
		return job.NewWorkoutScheduledTask(job.WorkoutScheduledPayload{
			WorkoutID:   id,
			CustomerID:  customerID,
			WorkoutType: workoutType,
			StartTime:   start,
			EndTime:     end,
		})
	})

	return id, nil
}

func (s *WorkoutService) ListWorkouts(c echo.Context) ([]workout.Workout, error) {
	workouts, err := s.repo.List(c.Request().Context())
	observability.RecordStoreOperation(workoutEntity, "list", err)
	return workouts, err
}

func (s *WorkoutService) GetWorkout(c echo.Context, id int64) (*workout.Workout, error) {
	found, err := s.repo.GetByID(c.Request().Context(), id)
	observability.RecordStoreOperation(workoutEntity, "get", err)
	return found, err
}

func (s *WorkoutService) UpdateWorkout(c echo.Context, id int64, in *workout.Input) error {
	err := s.repo.Update(c.Request().Context(), id, in)
	observability.RecordStoreOperation(workoutEntity, "update", err)
	if err != nil {
		return err
	}

	middleware.GetLogger(c).Info().Int64("workout_id", id).Msg("workout updated")
	return nil
}

// DeleteWorkout is not exposed over HTTP.
func (s *WorkoutService) DeleteWorkout(c echo.Context, id int64) error {
	err := s.repo.Delete(c.Request().Context(), id)
	observability.RecordStoreOperation(workoutEntity, "delete", err)
	return err
}
