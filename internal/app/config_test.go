package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odyssey-erp/finflow/internal/flow"
	"github.com/odyssey-erp/finflow/internal/flow/store"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv("SESSION_SECRET", "session-secret")
	t.Setenv("CSRF_SECRET", "csrf-secret")
}

func TestLoadConfigDefaults(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("FLOW_BACKEND", "")
	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.AppAddr)
	assert.Equal(t, store.BackendRedis, cfg.Backend())
	assert.Equal(t, flow.PersistSync, cfg.PersistMode())
	assert.Equal(t, "financial-flow:state", cfg.FlowSnapshotKey)
	assert.Equal(t, 24*time.Hour, cfg.IdempotencyTTL)
	assert.False(t, cfg.IsProduction())
}

func TestLoadConfigRequiresSecrets(t *testing.T) {
	t.Setenv("SESSION_SECRET", "")
	t.Setenv("CSRF_SECRET", "")
	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestConfigValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			SessionSecret:   "s",
			CSRFSecret:      "c",
			FlowBackend:     "postgres",
			FlowSnapshotKey: "k",
			FlowPersistMode: "async",
			IdempotencyTTL:  time.Minute,
		}
	}
	cfg := valid()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, store.BackendPostgres, cfg.Backend())
	assert.Equal(t, flow.PersistAsync, cfg.PersistMode())

	cases := map[string]func(*Config){
		"unknown backend":        func(c *Config) { c.FlowBackend = "sqlite" },
		"unknown persist mode":   func(c *Config) { c.FlowPersistMode = "eventually" },
		"empty snapshot key":     func(c *Config) { c.FlowSnapshotKey = "" },
		"async memory backend":   func(c *Config) { c.FlowBackend = "memory" },
		"missing session secret": func(c *Config) { c.SessionSecret = "" },
		"zero idempotency ttl":   func(c *Config) { c.IdempotencyTTL = 0 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := valid()
			mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
