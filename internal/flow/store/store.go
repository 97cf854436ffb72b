// Package store provides the snapshot repositories selected by FLOW_BACKEND.
package store

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/odyssey-erp/finflow/internal/flow"
)

// Backend names a snapshot storage implementation.
type Backend string

const (
	BackendMemory   Backend = "memory"
	BackendRedis    Backend = "redis"
	BackendPostgres Backend = "postgres"
)

// DefaultKey is the storage key used when none is configured.
const DefaultKey = "financial-flow:state"

// ErrUnknownBackend is returned for unsupported backend names.
var ErrUnknownBackend = errors.New("store: unknown backend")

// Store is a repository that can also drop stale revisioned writes.
type Store interface {
	flow.Repository
	flow.RevisionSaver
}

// ParseBackend validates a backend name.
func ParseBackend(name string) (Backend, error) {
	switch b := Backend(strings.ToLower(strings.TrimSpace(name))); b {
	case BackendMemory, BackendRedis, BackendPostgres:
		return b, nil
	case "":
		return BackendRedis, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownBackend, name)
	}
}

// Deps carries the clients a backend may need.
type Deps struct {
	Redis    *redis.Client
	Postgres *pgxpool.Pool
}

// Open builds the store for backend. The matching client in deps must be set.
func Open(backend Backend, key string, deps Deps) (Store, error) {
	if key == "" {
		key = DefaultKey
	}
	switch backend {
	case BackendMemory:
		return NewMemory(), nil
	case BackendRedis:
		if deps.Redis == nil {
			return nil, errors.New("store: redis client not configured")
		}
		return NewRedis(deps.Redis, key), nil
	case BackendPostgres:
		if deps.Postgres == nil {
			return nil, errors.New("store: postgres pool not configured")
		}
		return NewPostgresPool(deps.Postgres, key), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
}
