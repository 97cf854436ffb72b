package app

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odyssey-erp/finflow/internal/flow"
	"github.com/odyssey-erp/finflow/internal/flow/store"
)

func TestOpenResourcesMemory(t *testing.T) {
	cfg := &Config{FlowBackend: "memory", FlowSnapshotKey: "k"}
	res, err := OpenResources(context.Background(), cfg, slog.New(slog.NewTextHandler(io.Discard, nil)), false)
	require.NoError(t, err)
	defer res.Close()
	assert.Nil(t, res.Redis)
	assert.IsType(t, &store.Memory{}, res.Store)
}

func TestOpenResourcesRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := &Config{FlowBackend: "redis", FlowSnapshotKey: "flow:test", RedisAddr: mr.Addr()}
	res, err := OpenResources(context.Background(), cfg, nil, false)
	require.NoError(t, err)
	defer res.Close()
	require.NotNil(t, res.Redis)

	require.NoError(t, res.Store.Save(context.Background(), flow.Initial()))
	assert.True(t, mr.Exists("flow:test"))
	assert.Equal(t, mr.Addr(), cfg.AsynqRedisOpt().Addr)
}

func TestOpenResourcesRedisUnreachable(t *testing.T) {
	cfg := &Config{FlowBackend: "redis", FlowSnapshotKey: "k", RedisAddr: "127.0.0.1:1"}
	_, err := OpenResources(context.Background(), cfg, nil, false)
	assert.Error(t, err)
}
