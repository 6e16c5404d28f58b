package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("CAPACITY_GUARD", "")
	t.Setenv("SLOT_TOLERANCE_MINUTES", "")
	t.Setenv("CONFIG_CACHE_TTL", "")

	cfg := Load()

	assert.Equal(t, GuardLocking, cfg.CapacityGuard)
	assert.Equal(t, 30, cfg.SlotToleranceMinutes)
	assert.Equal(t, 10*time.Minute, cfg.ConfigCacheTTL)
	require.NoError(t, cfg.Validate())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("CAPACITY_GUARD", "none")
	t.Setenv("SLOT_TOLERANCE_MINUTES", "15")
	t.Setenv("CONFIG_CACHE_TTL", "30s")
	t.Setenv("METRICS_ENABLED", "false")
	t.Setenv("SERVER_PORT", "9090")

	cfg := Load()

	assert.Equal(t, GuardNone, cfg.CapacityGuard)
	assert.Equal(t, 15, cfg.SlotToleranceMinutes)
	assert.Equal(t, 30*time.Second, cfg.ConfigCacheTTL)
	assert.False(t, cfg.MetricsEnabled)
	assert.Equal(t, ":9090", cfg.Addr())
}

func TestValidate_RejectsUnknownGuard(t *testing.T) {
	t.Setenv("CAPACITY_GUARD", "optimistic")

	assert.Error(t, Load().Validate())
}
