package observability

import (
	"errors"
	"testing"

	"github.com/deppfellow/fitness-center/internal/errs"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestOutcome(t *testing.T) {
	assert.Equal(t, OutcomeSuccess, Outcome(nil))
	assert.Equal(t, OutcomeNotFound, Outcome(errs.NewNotFoundError("gone", true, nil)))
	assert.Equal(t, OutcomeError, Outcome(errors.New("boom")))
	assert.Equal(t, OutcomeError, Outcome(errs.NewStoreError("boom")))
}

func TestRecordStoreOperation(t *testing.T) {
	counter := storeOperations.WithLabelValues("customer", "get", OutcomeNotFound)
	before := testutil.ToFloat64(counter)

	RecordStoreOperation("customer", "get", errs.NewNotFoundError("gone", true, nil))

	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}

func TestRecordJobEnqueued(t *testing.T) {
	failed := jobsEnqueued.WithLabelValues("email:welcome", OutcomeError)
	before := testutil.ToFloat64(failed)

	RecordJobEnqueued("email:welcome", errors.New("redis down"))

	assert.Equal(t, before+1, testutil.ToFloat64(failed))
}

func TestRecordRateLimitHit(t *testing.T) {
	counter := rateLimitHits.WithLabelValues("/customers")
	before := testutil.ToFloat64(counter)

	RecordRateLimitHit("/customers")

	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}
