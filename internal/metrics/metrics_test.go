package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRegisterIsIdempotent(t *testing.T) {
	assert.NotPanics(t, func() {
		Register()
		Register()
	})
}

func TestObserveEstimate(t *testing.T) {
	before := testutil.ToFloat64(estimates.WithLabelValues("goal"))
	beforeInvalid := testutil.ToFloat64(invalidEstimates)

	ObserveEstimate("goal", false)
	ObserveEstimate("goal", true)

	assert.Equal(t, before+2, testutil.ToFloat64(estimates.WithLabelValues("goal")))
	assert.Equal(t, beforeInvalid+1, testutil.ToFloat64(invalidEstimates))
}

func TestCounters(t *testing.T) {
	before := testutil.ToFloat64(summaries)
	IncSummary()
	assert.Equal(t, before+1, testutil.ToFloat64(summaries))

	IncPresetApplied("rda")
	assert.Equal(t, 1.0, testutil.ToFloat64(presetsApplied.WithLabelValues("rda")))
}
