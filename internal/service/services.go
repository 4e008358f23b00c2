package service

import (
	"github.com/deppfellow/fitness-center/internal/lib/job"
	"github.com/deppfellow/fitness-center/internal/repository"
	"github.com/deppfellow/fitness-center/internal/server"
)

type Services struct {
	Customer *CustomerService
	Workout  *WorkoutService
	Job      *job.JobService
}

// NewServices wires the services to the repositories. Notification tasks
// are only enqueued when the job service is running.
func NewServices(s *server.Server, repos *repository.Repositories) *Services {
	var jobs TaskEnqueuer
	if s.Job != nil {
		jobs = s.Job.Client
	}

	return &Services{
		Customer: NewCustomerService(repos.Customer, jobs),
		Workout:  NewWorkoutService(repos.Workout, jobs),
		Job:      s.Job,
	}
}
