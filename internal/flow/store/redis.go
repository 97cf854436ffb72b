package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/odyssey-erp/finflow/internal/flow"
)

const maxWatchRetries = 5

var errStaleRevision = errors.New("store: stale revision")

// Redis stores the snapshot JSON under a single key.
type Redis struct {
	client *redis.Client
	key    string
	revKey string
}

// NewRedis constructs a Redis store for key.
func NewRedis(client *redis.Client, key string) *Redis {
	return &Redis{client: client, key: key, revKey: key + ":rev"}
}

// Load reads and decodes the snapshot.
func (r *Redis) Load(ctx context.Context) (flow.Snapshot, error) {
	payload, err := r.client.Get(ctx, r.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return flow.Initial(), flow.ErrSnapshotNotFound
	}
	if err != nil {
		return flow.Initial(), fmt.Errorf("store/redis: get: %w", err)
	}
	return flow.Decode(payload)
}

// Save overwrites the snapshot and leaves the stored revision alone.
func (r *Redis) Save(ctx context.Context, s flow.Snapshot) error {
	payload, err := flow.Encode(s)
	if err != nil {
		return err
	}
	if err := r.client.Set(ctx, r.key, payload, 0).Err(); err != nil {
		return fmt.Errorf("store/redis: set: %w", err)
	}
	return nil
}

// SaveRevision writes payload only if revision exceeds the stored revision.
// The check and write run under WATCH so concurrent workers cannot interleave.
func (r *Redis) SaveRevision(ctx context.Context, payload []byte, revision int64) (bool, error) {
	txf := func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, r.revKey).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if revision <= current {
			return errStaleRevision
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, r.key, payload, 0)
			pipe.Set(ctx, r.revKey, revision, 0)
			return nil
		})
		return err
	}

	for i := 0; i < maxWatchRetries; i++ {
		err := r.client.Watch(ctx, txf, r.revKey)
		switch {
		case err == nil:
			return true, nil
		case errors.Is(err, errStaleRevision):
			return false, nil
		case errors.Is(err, redis.TxFailedErr):
			continue
		default:
			return false, fmt.Errorf("store/redis: save revision: %w", err)
		}
	}
	return false, fmt.Errorf("store/redis: save revision: %w", redis.TxFailedErr)
}
