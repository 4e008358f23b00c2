// Package service contains the business logic.
//
// It sits between the handler and repository layers.
// It receives validated data from the handler, performs
// business operations, and calls repository methods to interact
// with the data
package service

import (
	"context"

	"github.com/deppfellow/fitness-center/internal/observability"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
)

// TaskEnqueuer hands background tasks to the queue. *asynq.Client
// implements it.
type TaskEnqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// enqueue schedules task when a queue is configured.
//
// Failures are logged and counted, never returned: notifications must not
// fail the write that triggered them.
func enqueue(ctx context.Context, logger *zerolog.Logger, jobs TaskEnqueuer, build func() (*asynq.Task, error)) {
	if jobs == nil {
		return
	}

	task, err := build()
	if err != nil {
		logger.Error().Err(err).Msg("failed to build background task")
		return
	}

	info, err := jobs.EnqueueContext(ctx, task)
	observability.RecordJobEnqueued(task.Type(), err)
	if err != nil {
		logger.Error().Err(err).Str("task", task.Type()).Msg("failed to enqueue background task")
		return
	}

	logger.Debug().Str("task", task.Type()).Str("task_id", info.ID).Msg("background task enqueued")
}
