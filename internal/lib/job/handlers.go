package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/deppfellow/fitness-center/internal/lib/email"
	"github.com/deppfellow/fitness-center/internal/model/customer"
	"github.com/hibiken/asynq"
)

// Mailer sends the notification emails. *email.Client implements it.
type Mailer interface {
	SendWelcomeEmail(to, customerName string) error
	SendWorkoutScheduledEmail(to string, details email.WorkoutDetails) error
}

// CustomerLookup resolves the member a workout belongs to.
type CustomerLookup interface {
	GetByID(ctx context.Context, id int64) (*customer.Customer, error)
}

// InitHandlers sets the dependencies of the task handlers.
//
// A nil mailer turns every task into a logged no-op.
func (j *JobService) InitHandlers(mailer Mailer, customers CustomerLookup) {
	j.mailer = mailer
	j.customers = customers
}

func (j *JobService) handleWelcomeEmailTask(ctx context.Context, t *asynq.Task) error {
	var p WelcomeEmailPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("failed to unmarshal welcome email payload: %w: %w", err, asynq.SkipRetry)
	}

	logger := j.logger.With().Str("type", "welcome").Str("to", p.To).Logger()

	if j.mailer == nil {
		logger.Info().Msg("email delivery disabled, skipping welcome email")
		return nil
	}

	logger.Info().Msg("Processing welcome email task")

	if err := j.mailer.SendWelcomeEmail(p.To, p.CustomerName); err != nil {
		logger.Error().Err(err).Msg("Failed to send welcome email")
		return err
	}

	logger.Info().Msg("Successfully sent welcome email")
	return nil
}

func (j *JobService) handleWorkoutScheduledTask(ctx context.Context, t *asynq.Task) error {
	var p WorkoutScheduledPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("failed to unmarshal workout scheduled payload: %w: %w", err, asynq.SkipRetry)
	}

	logger := j.logger.With().
		Str("type", "workout_scheduled").
		Int64("workout_id", p.WorkoutID).
		Int64("customer_id", p.CustomerID).
		Logger()

	if j.mailer == nil || j.customers == nil {
		logger.Info().Msg("email delivery disabled, skipping workout confirmation")
		return nil
	}

	member, err := j.customers.GetByID(ctx, p.CustomerID)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load customer for workout confirmation")
		return err
	}

	if member.Email == nil || *member.Email == "" {
		logger.Info().Msg("customer has no email address, skipping workout confirmation")
		return nil
	}

	err = j.mailer.SendWorkoutScheduledEmail(*member.Email, email.WorkoutDetails{
		CustomerName: member.CustomerName,
		WorkoutType:  p.WorkoutType,
		StartTime:    p.StartTime,
		EndTime:      p.EndTime,
	})
	if err != nil {
		logger.Error().Err(err).Msg("Failed to send workout confirmation")
		return err
	}

	logger.Info().Msg("Successfully sent workout confirmation")
	return nil
}
