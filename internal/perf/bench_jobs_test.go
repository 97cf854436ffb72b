package perf

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"github.com/odyssey-erp/finflow/internal/flow"
	"github.com/odyssey-erp/finflow/internal/flow/store"
	jobmetrics "github.com/odyssey-erp/finflow/internal/jobs"
	"github.com/odyssey-erp/finflow/jobs"
)

func TestSnapshotPersistThroughputAndReliability(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := jobmetrics.NewMetrics(reg)
	repo := store.NewMemory()
	job := jobs.NewSnapshotPersistJob(repo, slog.New(slog.NewTextHandler(io.Discard, nil)), metrics)
	ctx := context.Background()

	snap := flow.Initial()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 1; i <= 60; i++ {
		snap = flow.Reduce(snap, flow.SubmitEvent{Activity: flow.RetailSales, Amount: flow.FromFloat(10)}, now.Add(time.Duration(i)*time.Millisecond))
		payload, err := flow.Encode(snap)
		if err != nil {
			t.Fatalf("encode snapshot: %v", err)
		}
		task, err := jobs.NewSnapshotPersistTask(payload, int64(i*10))
		if err != nil {
			t.Fatalf("build task: %v", err)
		}
		if err := job.Handle(ctx, task); err != nil {
			t.Fatalf("persist revision %d: %v", i, err)
		}
	}

	// Replayed deliveries arrive out of order and must be dropped.
	for i := 1; i <= 5; i++ {
		payload, _ := flow.Encode(flow.Initial())
		task, _ := jobs.NewSnapshotPersistTask(payload, int64(i))
		if err := job.Handle(ctx, task); err != nil {
			t.Fatalf("stale revision %d: %v", i, err)
		}
	}

	stored, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load stored snapshot: %v", err)
	}
	if len(stored.Transactions) != 60 {
		t.Fatalf("stale revision overwrote snapshot: %d transactions", len(stored.Transactions))
	}

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("failed to gather metrics: %v", err)
	}

	success := metricValue(t, families, "finflow_jobs_total", map[string]string{"job": jobs.TaskSnapshotPersist, "status": "success"})
	if success != 65 {
		t.Fatalf("unexpected success count: %f", success)
	}
	skipped := metricValue(t, families, "finflow_jobs_skipped_total", map[string]string{"job": jobs.TaskSnapshotPersist, "reason": "stale"})
	if skipped != 5 {
		t.Fatalf("unexpected stale count: %f", skipped)
	}

	mean := histogramMean(t, families, "finflow_job_duration_seconds", map[string]string{"job": jobs.TaskSnapshotPersist})
	if mean > 0.5 {
		t.Fatalf("persist duration above budget: %f", mean)
	}
}

func metricValue(t *testing.T, families []*dto.MetricFamily, name string, labels map[string]string) float64 {
	t.Helper()
	for _, fam := range families {
		if fam.GetName() != name {
			continue
		}
		for _, metric := range fam.GetMetric() {
			if hasLabels(metric, labels) {
				if fam.GetType() == dto.MetricType_COUNTER {
					return metric.GetCounter().GetValue()
				}
				if fam.GetType() == dto.MetricType_GAUGE {
					return metric.GetGauge().GetValue()
				}
			}
		}
	}
	t.Fatalf("metric %s with labels %v not found", name, labels)
	return 0
}

func histogramMean(t *testing.T, families []*dto.MetricFamily, name string, labels map[string]string) float64 {
	t.Helper()
	for _, fam := range families {
		if fam.GetName() != name {
			continue
		}
		for _, metric := range fam.GetMetric() {
			if hasLabels(metric, labels) {
				hist := metric.GetHistogram()
				if hist == nil || hist.GetSampleCount() == 0 {
					t.Fatalf("histogram %s missing samples", name)
				}
				return hist.GetSampleSum() / float64(hist.GetSampleCount())
			}
		}
	}
	t.Fatalf("histogram %s with labels %v not found", name, labels)
	return 0
}

func hasLabels(metric *dto.Metric, labels map[string]string) bool {
	for _, lp := range metric.GetLabel() {
		if val, ok := labels[lp.GetName()]; ok {
			if lp.GetValue() != val {
				return false
			}
		}
	}
	for key := range labels {
		found := false
		for _, lp := range metric.GetLabel() {
			if lp.GetName() == key {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
