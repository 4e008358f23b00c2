package job

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

const (
	// TaskWelcome greets a new member.
	TaskWelcome = "email:welcome"

	// TaskWorkoutScheduled confirms a newly scheduled workout.
	TaskWorkoutScheduled = "email:workout_scheduled"
)

// WelcomeEmailPayload is the JSON payload of TaskWelcome.
type WelcomeEmailPayload struct {
	To           string `json:"to"`
	CustomerName string `json:"customer_name"`
}

// NewWelcomeEmailTask builds a TaskWelcome task.
//
// Retries up to 3 times on the default queue, 30s per attempt.
func NewWelcomeEmailTask(to, customerName string) (*asynq.Task, error) {
	payload, err := json.Marshal(WelcomeEmailPayload{
		To:           to,
		CustomerName: customerName,
	})
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskWelcome,
		payload,
		asynq.MaxRetry(3),
		asynq.Queue("default"),
		asynq.Timeout(30*time.Second),
	), nil
}

// WorkoutScheduledPayload is the JSON payload of TaskWorkoutScheduled.
//
// The recipient is resolved from CustomerID when the task runs.
type WorkoutScheduledPayload struct {
	WorkoutID   int64  `json:"workout_id"`
	CustomerID  int64  `json:"customer_id"`
	WorkoutType string `json:"workout_type"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
}

// NewWorkoutScheduledTask builds a low priority TaskWorkoutScheduled task.
func NewWorkoutScheduledTask(p WorkoutScheduledPayload) (*asynq.Task, error) {
	payload, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskWorkoutScheduled,
		payload,
		asynq.MaxRetry(3),
		asynq.Queue("low"),
		asynq.Timeout(30*time.Second),
	), nil
}
