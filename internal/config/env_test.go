package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv unsets every variable Config reads; envconfig treats a set but
// empty variable as a value, not as absent.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "WALLET_APP_ID", "WALLET_CONFIG_DIR", "WALLET_ADDRESS_RECORD",
		"WALLET_ATOMIC_WRITES", "WALLET_WATCH", "LOG_LEVEL", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST",
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", c.Port)
	assert.Equal(t, "com.localwallet.desktop", c.AppIdentifier)
	assert.Empty(t, c.ConfigDir)
	assert.True(t, c.AddressRecord)
	assert.False(t, c.AtomicWrites)
	assert.True(t, c.Watch)
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, 20.0, c.RateLimitRPS)
	assert.Equal(t, 40, c.RateLimitBurst)
}

func TestInitFromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9191")
	t.Setenv("WALLET_CONFIG_DIR", "/tmp/wallet")
	t.Setenv("WALLET_ADDRESS_RECORD", "false")
	t.Setenv("WALLET_ATOMIC_WRITES", "true")
	t.Setenv("RATE_LIMIT_RPS", "0")

	require.NoError(t, Init())
	assert.Equal(t, "9191", GetPort())
	assert.Equal(t, "/tmp/wallet", GetConfigDir())
	assert.False(t, AddressRecordEnabled())
	assert.True(t, AtomicWritesEnabled())

	rps, _ := GetRateLimit()
	assert.Zero(t, rps)
}

func TestLoadRejectsBadValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("WALLET_ATOMIC_WRITES", "sometimes")
	_, err := Load()
	assert.Error(t, err)

	require.NoError(t, os.Unsetenv("WALLET_ATOMIC_WRITES"))
	t.Setenv("RATE_LIMIT_BURST", "-1")
	_, err = Load()
	assert.Error(t, err)
}
