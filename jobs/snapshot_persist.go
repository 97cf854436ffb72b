package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/hibiken/asynq"

	"github.com/odyssey-erp/finflow/internal/flow"
	jobmetrics "github.com/odyssey-erp/finflow/internal/jobs"
)

// SnapshotPersistJob writes queued snapshots through a revision-aware store.
type SnapshotPersistJob struct {
	Store   flow.RevisionSaver
	Logger  *slog.Logger
	Metrics *jobmetrics.Metrics
}

// NewSnapshotPersistJob wires dependencies for the persist handler.
func NewSnapshotPersistJob(store flow.RevisionSaver, logger *slog.Logger, metrics *jobmetrics.Metrics) *SnapshotPersistJob {
	return &SnapshotPersistJob{Store: store, Logger: logger, Metrics: metrics}
}

// Handle processes TaskSnapshotPersist tasks. Malformed payloads are not retried.
func (j *SnapshotPersistJob) Handle(ctx context.Context, t *asynq.Task) (resultErr error) {
	if j == nil || j.Store == nil {
		return errors.New("snapshot persist: handler not configured")
	}
	var payload SnapshotPersistPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("snapshot persist: decode task: %v: %w", err, asynq.SkipRetry)
	}
	if _, err := flow.Decode(payload.Snapshot); err != nil {
		return fmt.Errorf("snapshot persist: %v: %w", err, asynq.SkipRetry)
	}

	tracker := j.Metrics.Track(TaskSnapshotPersist)
	defer func() {
		resultErr = tracker.End(resultErr)
	}()

	logger := j.logger().With(slog.Int64("revision", payload.Revision))
	written, err := j.Store.SaveRevision(ctx, payload.Snapshot, payload.Revision)
	if err != nil {
		logger.Error("persist snapshot", slog.Any("error", err))
		return err
	}
	if !written {
		j.Metrics.AddSkipped(TaskSnapshotPersist, "stale")
		logger.Info("skipped stale snapshot")
		return nil
	}
	logger.Debug("snapshot persisted")
	return nil
}

func (j *SnapshotPersistJob) logger() *slog.Logger {
	if j.Logger != nil {
		return j.Logger
	}
	return slog.Default()
}
