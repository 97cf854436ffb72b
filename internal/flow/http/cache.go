package http

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/odyssey-erp/finflow/internal/flow"
	"github.com/odyssey-erp/finflow/internal/flow/statements"
)

// statementCache keeps the statements for the latest service version only.
// Any transition bumps the version, so older entries are never served.
type statementCache struct {
	mu      sync.RWMutex
	version uint64
	set     statements.Set
	valid   bool
}

func (c *statementCache) Get(version uint64) (statements.Set, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.valid || c.version != version {
		return statements.Set{}, false
	}
	return c.set, true
}

func (c *statementCache) Set(version uint64, set statements.Set) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.valid && c.version > version {
		return
	}
	c.version = version
	c.set = set
	c.valid = true
}

// statementsFor returns the statements and the snapshot they were derived from.
// Concurrent callers at the same version share one build.
func (h *Handler) statementsFor(ctx context.Context) (flow.Snapshot, statements.Set, error) {
	snap, version := h.service.Current()
	if set, ok := h.cache.Get(version); ok {
		recordCacheHit()
		return snap, set, nil
	}
	recordCacheMiss()
	key := "statements:" + strconv.FormatUint(version, 10)
	res, err, _ := singleflightBuild(ctx, &h.builds, key, func(context.Context) (interface{}, error) {
		start := time.Now()
		set := statements.Build(snap)
		observeBuildDuration(time.Since(start))
		h.cache.Set(version, set)
		return set, nil
	})
	if err != nil {
		return snap, statements.Set{}, err
	}
	return snap, res.(statements.Set), nil
}
