package jobs

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/hibiken/asynq"
)

const (
	// QueueDefault is the default queue name for background jobs.
	QueueDefault = "default"
	// TaskSnapshotPersist writes a snapshot produced by the web process.
	TaskSnapshotPersist = "flow:snapshot:persist"
)

// SnapshotPersistPayload carries an encoded snapshot and its revision.
type SnapshotPersistPayload struct {
	Snapshot json.RawMessage `json:"snapshot"`
	Revision int64           `json:"revision"`
}

// NewSnapshotPersistTask constructs an Asynq task for an encoded snapshot.
func NewSnapshotPersistTask(snapshot []byte, revision int64) (*asynq.Task, error) {
	if len(snapshot) == 0 {
		return nil, errors.New("jobs: empty snapshot payload")
	}
	if revision <= 0 {
		return nil, fmt.Errorf("jobs: invalid revision %d", revision)
	}
	data, err := json.Marshal(SnapshotPersistPayload{Snapshot: snapshot, Revision: revision})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskSnapshotPersist, data), nil
}
