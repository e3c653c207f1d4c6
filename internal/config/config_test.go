package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/crisis")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8090", cfg.HTTPPort)
	assert.Equal(t, 500*time.Millisecond, cfg.MapDebounce)
	assert.Equal(t, 30*time.Second, cfg.PositionInterval)
	assert.Equal(t, DefaultStoreConnectTimeout, cfg.StoreConnectTimeout)
	assert.Equal(t, int32(4), cfg.DBMaxConns)
	assert.False(t, cfg.HasSession())
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/crisis")
	t.Setenv("API_KEYS", "one, two ,three")
	t.Setenv("RECONNECT_INITIAL", "10s")
	t.Setenv("RECONNECT_MAX", "2s")
	t.Setenv("MAP_INITIAL_LAT", "59.91")
	t.Setenv("USER_ID", "7")
	t.Setenv("AUTH_TOKEN", "token")
	t.Setenv("REDIS_DB", "not-a-number")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, []string{"one", "two", "three"}, cfg.APIKeys)
	// максимум задержки не меньше начальной
	assert.Equal(t, 10*time.Second, cfg.ReconnectMax)
	assert.Equal(t, 59.91, cfg.InitialLat)
	assert.Equal(t, 0, cfg.RedisDB)
	assert.True(t, cfg.HasSession())
}

func TestLoadConfig_RequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	_, err := LoadConfig()
	assert.Error(t, err)
}
