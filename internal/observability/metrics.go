// Package observability exposes the Prometheus metrics of the service.
package observability

import (
	"errors"
	"net/http"

	"github.com/deppfellow/fitness-center/internal/errs"
	"github.com/prometheus/client_golang/prometheus"
)

// Outcome labels of a store operation.
const (
	OutcomeSuccess  = "success"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"
)

var (
	storeOperations = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fitness_center",
		Subsystem: "store",
		Name:      "operations_total",
		Help:      "Data access operations, labeled by entity, operation and outcome.",
	}, []string{"entity", "operation", "outcome"})

	rateLimitHits = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fitness_center",
		Subsystem: "http",
		Name:      "rate_limited_total",
		Help:      "Requests rejected by the rate limiter, labeled by route.",
	}, []string{"route"})

	jobsEnqueued = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fitness_center",
		Subsystem: "jobs",
		Name:      "enqueued_total",
		Help:      "Background notification tasks handed to the queue, labeled by task type and outcome.",
	}, []string{"task", "outcome"})
)

func init() {
	prometheus.MustRegister(storeOperations, rateLimitHits, jobsEnqueued)
}

// Outcome classifies the error returned by a store operation.
func Outcome(err error) string {
	if err == nil {
		return OutcomeSuccess
	}
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) && httpErr.Status == http.StatusNotFound {
		return OutcomeNotFound
	}
	return OutcomeError
}

// RecordStoreOperation counts one data access call and its outcome.
func RecordStoreOperation(entity, operation string, err error) {
	storeOperations.WithLabelValues(entity, operation, Outcome(err)).Inc()
}

// RecordRateLimitHit counts a request rejected by the rate limiter.
func RecordRateLimitHit(route string) {
	rateLimitHits.WithLabelValues(route).Inc()
}

// RecordJobEnqueued counts an enqueue attempt of a background task.
func RecordJobEnqueued(task string, err error) {
	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeError
	}
	jobsEnqueued.WithLabelValues(task, outcome).Inc()
}
