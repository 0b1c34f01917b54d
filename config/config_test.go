package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ENVIRONMENT", "test")

	cfg, err := load()

	require.NoError(t, err)
	assert.Equal(t, ":7000", cfg.ListenAddr)
	assert.Equal(t, 10.0, cfg.TokensPerKG)
	assert.Equal(t, 1000.0, cfg.MaxSavingsPerDay)
	assert.Equal(t, 20, cfg.LeaderboardSize)
	assert.Equal(t, 50, cfg.HistoryLimit)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("ENVIRONMENT", "test")
	t.Setenv("LISTEN_ADDR", ":8080")
	t.Setenv("TOKENS_PER_KG", "7.5")
	t.Setenv("MAX_SAVINGS_PER_DAY", "500")
	t.Setenv("LEADERBOARD_SIZE", "10")
	t.Setenv("HISTORY_LIMIT", "25")

	cfg, err := load()

	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, 7.5, cfg.TokensPerKG)
	assert.Equal(t, 500.0, cfg.MaxSavingsPerDay)
	assert.Equal(t, 10, cfg.LeaderboardSize)
	assert.Equal(t, 25, cfg.HistoryLimit)
}

func TestLoad_InvalidOverridesKeepDefaults(t *testing.T) {
	t.Setenv("ENVIRONMENT", "test")
	t.Setenv("TOKENS_PER_KG", "not-a-number")
	t.Setenv("MAX_SAVINGS_PER_DAY", "-5")
	t.Setenv("LEADERBOARD_SIZE", "0")

	cfg, err := load()

	require.NoError(t, err)
	assert.Equal(t, 10.0, cfg.TokensPerKG)
	assert.Equal(t, 1000.0, cfg.MaxSavingsPerDay)
	assert.Equal(t, 20, cfg.LeaderboardSize)
}

func TestLoad_RequiresDatabaseURLOutsideTests(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("DATABASE_URL", "")

	_, err := load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL is required")
}
