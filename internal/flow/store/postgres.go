package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/odyssey-erp/finflow/internal/flow"
	"github.com/odyssey-erp/finflow/internal/platform/db"
)

const (
	schemaSQL = `CREATE TABLE IF NOT EXISTS flow_snapshots (
	key TEXT PRIMARY KEY,
	payload JSONB NOT NULL,
	revision BIGINT NOT NULL DEFAULT 0,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`
	loadSQL = `SELECT payload FROM flow_snapshots WHERE key = $1`
	saveSQL = `INSERT INTO flow_snapshots (key, payload, revision, updated_at)
VALUES ($1, $2::jsonb, 0, now())
ON CONFLICT (key) DO UPDATE SET payload = EXCLUDED.payload, updated_at = now()`
	lockRevisionSQL = `SELECT revision FROM flow_snapshots WHERE key = $1 FOR UPDATE`
	saveRevisionSQL = `INSERT INTO flow_snapshots (key, payload, revision, updated_at)
VALUES ($1, $2::jsonb, $3, now())
ON CONFLICT (key) DO UPDATE SET payload = EXCLUDED.payload, revision = EXCLUDED.revision, updated_at = now()`
)

// Querier is the subset of pgx shared by pools and transactions.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// TxFunc runs fn inside a transaction.
type TxFunc func(ctx context.Context, fn func(Querier) error) error

// Postgres stores the snapshot in the flow_snapshots table.
type Postgres struct {
	q   Querier
	tx  TxFunc
	key string
}

// NewPostgres builds a store from a querier and transaction runner.
func NewPostgres(q Querier, tx TxFunc, key string) *Postgres {
	return &Postgres{q: q, tx: tx, key: key}
}

// NewPostgresPool builds a store on a pgx pool, using db.WithTx for revisioned writes.
func NewPostgresPool(pool *pgxpool.Pool, key string) *Postgres {
	return NewPostgres(pool, func(ctx context.Context, fn func(Querier) error) error {
		return db.WithTx(ctx, pool, func(tx pgx.Tx) error {
			return fn(tx)
		})
	}, key)
}

// EnsureSchema creates the snapshot table when missing.
func (p *Postgres) EnsureSchema(ctx context.Context) error {
	if _, err := p.q.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("store/postgres: ensure schema: %w", err)
	}
	return nil
}

// Load reads and decodes the snapshot row.
func (p *Postgres) Load(ctx context.Context) (flow.Snapshot, error) {
	var payload []byte
	if err := p.q.QueryRow(ctx, loadSQL, p.key).Scan(&payload); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return flow.Initial(), flow.ErrSnapshotNotFound
		}
		return flow.Initial(), fmt.Errorf("store/postgres: load: %w", err)
	}
	return flow.Decode(payload)
}

// Save upserts the snapshot row. The revision column belongs to SaveRevision
// and is left as it is.
func (p *Postgres) Save(ctx context.Context, s flow.Snapshot) error {
	payload, err := flow.Encode(s)
	if err != nil {
		return err
	}
	if _, err := p.q.Exec(ctx, saveSQL, p.key, string(payload)); err != nil {
		return fmt.Errorf("store/postgres: save: %w", err)
	}
	return nil
}

// SaveRevision locks the row and writes only when revision is newer.
func (p *Postgres) SaveRevision(ctx context.Context, payload []byte, revision int64) (bool, error) {
	written := false
	err := p.tx(ctx, func(q Querier) error {
		var current int64
		if err := q.QueryRow(ctx, lockRevisionSQL, p.key).Scan(&current); err != nil && !errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("store/postgres: lock revision: %w", err)
		}
		if revision <= current {
			return nil
		}
		if _, err := q.Exec(ctx, saveRevisionSQL, p.key, string(payload), revision); err != nil {
			return fmt.Errorf("store/postgres: save revision: %w", err)
		}
		written = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return written, nil
}
