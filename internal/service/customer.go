package service

import (
	"github.com/deppfellow/fitness-center/internal/lib/job"
	"github.com/deppfellow/fitness-center/internal/middleware"
	"github.com/deppfellow/fitness-center/internal/model/customer"
	"github.com/deppfellow/fitness-center/internal/observability"
	"github.com/deppfellow/fitness-center/internal/repository"
	"github.com/hibiken/asynq"
	"github.com/labstack/echo/v4"
)

const customerEntity = "customer"

type CustomerService struct {
	repo *repository.CustomerRepository
	jobs TaskEnqueuer
}

func NewCustomerService(repo *repository.CustomerRepository, jobs TaskEnqueuer) *CustomerService {
	return &CustomerService{repo: repo, jobs: jobs}
}

// CreateCustomer stores a new member and queues a welcome email when the
// member gave an address.
func (s *CustomerService) CreateCustomer(c echo.Context, in *customer.Input) (int64, error) {
	logger := middleware.GetLogger(c)
	ctx := c.Request().Context()

	id, err := s.repo.Create(ctx, in)
	observability.RecordStoreOperation(customerEntity, "create", err)
	if err != nil {
		return 0, err
	}

	logger.Info().Int64("customer_id", id).Msg("customer created")

	if in.Email != nil && *in.Email != "" {
		enqueue(ctx, logger, s.jobs, func() (*asynq.Task, error) {
			return job.NewWelcomeEmailTask(*in.Email, in.Name())
		})
	}

	return id, nil
}

func (s *CustomerService) ListCustomers(c echo.Context) ([]customer.Customer, error) {
	customers, err := s.repo.List(c.Request().Context())
	observability.RecordStoreOperation(customerEntity, "list", err)
	return customers, err
}

func (s *CustomerService) GetCustomer(c echo.Context, id int64) (*customer.Customer, error) {
	found, err := s.repo.GetByID(c.Request().Context(), id)
	observability.RecordStoreOperation(customerEntity, "get", err)
	return found, err
}

func (s *CustomerService) UpdateCustomer(c echo.Context, id int64, in *customer.Input) error {
	err := s.repo.Update(c.Request().Context(), id, in)
	observability.RecordStoreOperation(customerEntity, "update", err)
	if err != nil {
		return err
	}

	middleware.GetLogger(c).Info().Int64("customer_id", id).Msg("customer updated")
	return nil
}

// DeleteCustomer removes a member together with their workouts.
func (s *CustomerService) DeleteCustomer(c echo.Context, id int64) error {
	err := s.repo.Delete(c.Request().Context(), id)
	observability.RecordStoreOperation(customerEntity, "delete", err)
	if err != nil {
		return err
	}

	middleware.GetLogger(c).Info().Int64("customer_id", id).Msg("customer deleted")
	return nil
}
