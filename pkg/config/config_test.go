package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "input", cfg.InputDir)
	assert.Equal(t, "output", cfg.OutputDir)
	assert.Equal(t, "klubovi.csv", cfg.ClubsFile)
	assert.Equal(t, 5, cfg.TopPerClub)
	assert.Equal(t, []string{"-EQ", "-OSI"}, cfg.StripSuffixes)
	assert.Equal(t, "8090", cfg.Port)
	assert.False(t, cfg.HasDatabase())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("TOP_PER_CLUB", "3")
	t.Setenv("STRIP_SUFFIXES", "-EQ, -OSI, -X")
	t.Setenv("DATABASE_URL", "postgres://localhost/meets")
	t.Setenv("DB_MAX_CONN_LIFETIME", "2h")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, 3, cfg.TopPerClub)
	assert.Equal(t, []string{"-EQ", "-OSI", "-X"}, cfg.StripSuffixes)
	assert.True(t, cfg.HasDatabase())
	assert.Equal(t, 2*time.Hour, cfg.Database.MaxConnLifetime)
}

func TestLoad_RejectsBadEnv(t *testing.T) {
	t.Setenv("ENV", "whatever")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ENV must be one of")
}

func TestLoad_RejectsBadTopPerClub(t *testing.T) {
	t.Setenv("TOP_PER_CLUB", "0")

	_, err := Load()
	require.Error(t, err)
}

func TestLoad_IgnoresUnparseableNumbers(t *testing.T) {
	t.Setenv("TOP_PER_CLUB", "abc")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.TopPerClub)
}
