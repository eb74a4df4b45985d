package middleware

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ahrav/go-mcts/internal/domain"
)

// testSearchMetrics provides a global instance to avoid duplicate metric
// registration issues across tests in the same package.
var testSearchMetrics *SearchMetrics

func init() { testSearchMetrics = NewSearchMetrics() }

func TestNewSearchMetricsInitializesAllVectors(t *testing.T) {
	m := testSearchMetrics
	assert.NotNil(t, m)
	assert.NotNil(t, m.probesTotal)
	assert.NotNil(t, m.treeSize)
	assert.NotNil(t, m.updateLatency)
	assert.NotNil(t, m.traceStepsLength)
}

func TestRecordProbeDoesNotPanicForEachStatus(t *testing.T) {
	m := testSearchMetrics
	for _, status := range []domain.ProbeStatus{
		domain.StatusExpanded, domain.StatusBusy, domain.StatusEmpty,
	} {
		assert.NotPanics(t, func() {
			m.RecordProbe("tictactoe", status, 7)
		})
	}
}

func TestRecordUpdateDoesNotPanic(t *testing.T) {
	m := testSearchMetrics
	assert.NotPanics(t, func() {
		m.RecordUpdate("sticks", 250*time.Microsecond)
	})
}

func TestSetTreeSizeDoesNotPanic(t *testing.T) {
	m := testSearchMetrics
	assert.NotPanics(t, func() {
		m.SetTreeSize("tictactoe", 4821)
	})
}

func TestRecordProbeZeroSteps(t *testing.T) {
	m := testSearchMetrics
	assert.NotPanics(t, func() {
		m.RecordProbe("sticks", domain.StatusEmpty, 0)
	})
}

func BenchmarkRecordProbe(b *testing.B) {
	m := testSearchMetrics
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.RecordProbe("bench", domain.StatusExpanded, 12)
	}
}
