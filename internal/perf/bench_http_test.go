package perf

import (
	"sort"
	"testing"
	"time"

	"github.com/odyssey-erp/finflow/internal/flow"
	"github.com/odyssey-erp/finflow/internal/flow/statements"
)

func seededSnapshot(n int) flow.Snapshot {
	snap := flow.Initial()
	activities := flow.Activities()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		ev := flow.SubmitEvent{Activity: activities[i%len(activities)], Amount: flow.Money(int64(i+1) * 1250)}
		snap = flow.Reduce(snap, ev, now.Add(time.Duration(i)*time.Millisecond))
	}
	return snap
}

func TestStatementLatencyTargets(t *testing.T) {
	scenarios := []struct {
		name         string
		transactions int
		threshold    time.Duration
	}{
		{name: "empty", transactions: 0, threshold: 20 * time.Millisecond},
		{name: "busy", transactions: 5000, threshold: 50 * time.Millisecond},
	}

	for _, scenario := range scenarios {
		snap := seededSnapshot(scenario.transactions)
		samples := make([]time.Duration, 0, 20)
		for i := 0; i < 20; i++ {
			start := time.Now()
			_ = statements.Build(snap)
			samples = append(samples, time.Since(start))
		}
		p95 := percentile95(samples)
		if p95 > scenario.threshold {
			t.Fatalf("%s statement latency regression: p95=%s threshold=%s", scenario.name, p95, scenario.threshold)
		}
	}
}

func BenchmarkReduceSubmit(b *testing.B) {
	snap := seededSnapshot(100)
	ev := flow.SubmitEvent{Activity: flow.OnlineSales, Amount: flow.FromFloat(99.99)}
	now := time.Now()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = flow.Reduce(snap, ev, now)
	}
}

func BenchmarkStatementsBuild(b *testing.B) {
	snap := seededSnapshot(1000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = statements.Build(snap)
	}
}

func BenchmarkSnapshotEncode(b *testing.B) {
	snap := seededSnapshot(1000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := flow.Encode(snap); err != nil {
			b.Fatal(err)
		}
	}
}

func percentile95(samples []time.Duration) time.Duration {
	if len(samples) == 0 {
		return 0
	}
	sorted := append([]time.Duration(nil), samples...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	index := int(float64(len(sorted)-1) * 0.95)
	if index < 0 {
		index = 0
	}
	if index >= len(sorted) {
		index = len(sorted) - 1
	}
	return sorted[index]
}
