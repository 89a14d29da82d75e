package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddress)
	assert.Equal(t, 2*time.Hour, cfg.SessionTTL)
	assert.Equal(t, 15*time.Second, cfg.TermsDelay)
	assert.Equal(t, 50, cfg.HistoryCap)
	assert.Equal(t, 10, cfg.HistoryLimit)
	assert.Equal(t, 10, cfg.BoostDuration)
	assert.True(t, cfg.RequireTerms)
	assert.Equal(t, 1, cfg.MinBet)
	assert.Equal(t, 1000, cfg.MaxBet)
	assert.Empty(t, cfg.RedisAddr)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("HISTORY_CAP", "20")
	t.Setenv("TERMS_DELAY", "0s")
	t.Setenv("REQUIRE_TERMS", "false")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("HISTORY_LIMIT", "5")
	t.Setenv("BOOST_DURATION", "30")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, 20, cfg.HistoryCap)
	assert.Equal(t, time.Duration(0), cfg.TermsDelay)
	assert.False(t, cfg.RequireTerms)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, 5, cfg.HistoryLimit)
	assert.Equal(t, 30, cfg.BoostDuration)
}

func TestLoad_DotEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("MAX_BET=250\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("MAX_BET") })

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 250, cfg.MaxBet)
}

func TestLoad_InvalidValues(t *testing.T) {
	t.Setenv("SESSION_TTL", "forever")

	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}

func TestLoad_InvalidBoostDuration(t *testing.T) {
	t.Setenv("BOOST_DURATION", "ten")

	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.ErrorContains(t, err, "BOOST_DURATION")
}
