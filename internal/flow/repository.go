package flow

import (
	"context"
	"encoding/json"
	"fmt"
)

// Repository loads and stores the single persisted snapshot.
type Repository interface {
	Load(ctx context.Context) (Snapshot, error)
	Save(ctx context.Context, s Snapshot) error
}

// RevisionSaver is implemented by repositories able to drop stale writes.
// SaveRevision stores payload only when revision is newer than the stored one
// and reports whether it was written.
type RevisionSaver interface {
	SaveRevision(ctx context.Context, payload []byte, revision int64) (bool, error)
}

// Encode renders a snapshot in its persisted JSON form.
func Encode(s Snapshot) ([]byte, error) {
	if s.Transactions == nil {
		s.Transactions = []Transaction{}
	}
	payload, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("flow: encode snapshot: %w", err)
	}
	return payload, nil
}

// Decode parses a persisted snapshot over the defaults so missing fields keep
// their zero values.
func Decode(payload []byte) (Snapshot, error) {
	s := Initial()
	if err := json.Unmarshal(payload, &s); err != nil {
		return Initial(), fmt.Errorf("flow: decode snapshot: %w", err)
	}
	if s.Transactions == nil {
		s.Transactions = []Transaction{}
	}
	return s, nil
}
