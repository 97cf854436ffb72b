package e2e

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odyssey-erp/finflow/internal/flow"
	"github.com/odyssey-erp/finflow/internal/flow/store"
	jobmetrics "github.com/odyssey-erp/finflow/internal/jobs"
	"github.com/odyssey-erp/finflow/jobs"
)

// inlineQueue hands tasks straight to the worker handler, optionally holding
// them back to simulate out-of-order delivery.
type inlineQueue struct {
	job     *jobs.SnapshotPersistJob
	held    [][]byte
	revs    []int64
	holding bool
}

func (q *inlineQueue) EnqueueSnapshotPersist(ctx context.Context, payload []byte, revision int64) error {
	if q.holding {
		q.held = append(q.held, append([]byte(nil), payload...))
		q.revs = append(q.revs, revision)
		return nil
	}
	return q.deliver(ctx, payload, revision)
}

func (q *inlineQueue) deliver(ctx context.Context, payload []byte, revision int64) error {
	task, err := jobs.NewSnapshotPersistTask(payload, revision)
	if err != nil {
		return err
	}
	return q.job.Handle(ctx, task)
}

// flushReversed delivers held tasks newest first.
func (q *inlineQueue) flushReversed(ctx context.Context) error {
	for i := len(q.held) - 1; i >= 0; i-- {
		if err := q.deliver(ctx, q.held[i], q.revs[i]); err != nil {
			return err
		}
	}
	q.held, q.revs = nil, nil
	return nil
}

func newRedisStore(t *testing.T) *store.Redis {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return store.NewRedis(client, "financial-flow:e2e")
}

func TestAsyncPersistenceSurvivesRestart(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	repo := newRedisStore(t)
	reg := prometheus.NewRegistry()
	metrics := jobmetrics.NewMetrics(reg)
	queue := &inlineQueue{job: jobs.NewSnapshotPersistJob(repo, logger, metrics)}

	tick := time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC)
	clock := func() time.Time {
		tick = tick.Add(time.Millisecond)
		return tick
	}
	svc := flow.NewService(ctx, flow.ServiceOptions{
		Repository: repo,
		Enqueuer:   queue,
		Mode:       flow.PersistAsync,
		Logger:     logger,
		Clock:      clock,
	})

	_, err := svc.Submit(ctx, flow.RetailSales, flow.FromFloat(100))
	require.NoError(t, err)

	queue.holding = true
	_, err = svc.Submit(ctx, flow.OnlineSales, flow.FromFloat(100))
	require.NoError(t, err)
	snap, err := svc.Submit(ctx, flow.WagesExpense, flow.FromFloat(40))
	require.NoError(t, err)
	require.NoError(t, queue.flushReversed(ctx))

	assert.Equal(t, float64(1), skippedCount(t, reg, "stale"))

	restarted := flow.NewService(ctx, flow.ServiceOptions{Repository: repo, Logger: logger})
	restored := restarted.Snapshot()
	assert.Equal(t, snap.Transactions, restored.Transactions)
	assert.Len(t, restored.Transactions, 3)
	assert.Equal(t, flow.FromFloat(130), restored.Balance(flow.CheckingAccounts))
}

func skippedCount(t *testing.T, reg *prometheus.Registry, reason string) float64 {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() != "finflow_jobs_skipped_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			for _, label := range m.GetLabel() {
				if label.GetName() == "reason" && label.GetValue() == reason {
					return m.GetCounter().GetValue()
				}
			}
		}
	}
	return 0
}

func TestSyncPersistenceSurvivesRestart(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	repo := newRedisStore(t)

	svc := flow.NewService(ctx, flow.ServiceOptions{Repository: repo, Logger: logger})
	snap, err := svc.Submit(ctx, flow.BankLoanReceipt, flow.FromFloat(5000))
	require.NoError(t, err)
	snap, err = svc.Remove(ctx, snap.Transactions[0].Timestamp)
	require.NoError(t, err)
	require.True(t, snap.CanUndo())

	restarted := flow.NewService(ctx, flow.ServiceOptions{Repository: repo, Logger: logger})
	assert.True(t, restarted.CanUndo())
	restored, err := restarted.Undo(ctx)
	require.NoError(t, err)
	assert.Len(t, restored.Transactions, 1)
	assert.Equal(t, flow.FromFloat(5000), restored.Balance(flow.LongTermDebt))
}
