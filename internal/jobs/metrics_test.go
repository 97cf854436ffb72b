package jobmetrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestTrackerRecordsOutcome(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())

	_ = m.Track("flow:snapshot:persist").End(nil)
	err := m.Track("flow:snapshot:persist").End(errors.New("boom"))
	if err == nil {
		t.Fatalf("expected error to pass through")
	}
	m.AddSkipped("flow:snapshot:persist", "stale")

	if got := testutil.ToFloat64(m.runs.WithLabelValues("flow:snapshot:persist", "success")); got != 1 {
		t.Fatalf("expected 1 success, got %v", got)
	}
	if got := testutil.ToFloat64(m.failures.WithLabelValues("flow:snapshot:persist")); got != 1 {
		t.Fatalf("expected 1 failure, got %v", got)
	}
	if got := testutil.ToFloat64(m.skipped.WithLabelValues("flow:snapshot:persist", "stale")); got != 1 {
		t.Fatalf("expected 1 skipped, got %v", got)
	}
}

func TestNilMetricsTracker(t *testing.T) {
	var m *Metrics
	if err := m.Track("noop").End(nil); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	m.AddSkipped("noop", "stale")
}
