package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"talent-sync/internal/domain/matching"
)

func setBase(t *testing.T) {
	t.Helper()
	t.Setenv("APP_NAME", "talent-sync")
	t.Setenv("APP_ENV", "test")
	t.Setenv("HTTP_PORT", "8080")
	for _, k := range []string{
		"DB_HOST", "DB_PORT", "DB_NAME", "DB_SSL_MODE", "DB_POOL_MAX_CONNS", "DB_CONNECT_TIMEOUT",
		"REDIS_HOST", "REDIS_PORT", "REDIS_TTL", "MIGRATIONS_DIR", "RUN_MIGRATIONS",
		"MATCH_WEIGHT_COVERAGE", "MATCH_WEIGHT_PROFICIENCY", "MATCH_WEIGHT_GPA", "MATCH_WEIGHT_EXPERIENCE",
	} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	setBase(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "talent-sync", cfg.App.AppName)
	assert.Equal(t, "migrations", cfg.App.MigrationsDir)
	assert.False(t, cfg.App.RunMigrations)
	assert.Equal(t, "5432", cfg.Database.DBPort)
	assert.Equal(t, "disable", cfg.Database.DBSSLMode)
	assert.Equal(t, 5*time.Second, cfg.Database.ConnectTimeout)
	assert.False(t, cfg.Database.Enabled())
	assert.Equal(t, "localhost", cfg.Redis.Host)
	assert.Equal(t, "6379", cfg.Redis.Port)
	assert.Equal(t, 600*time.Second, cfg.Redis.TTL)
	assert.Equal(t, matching.DefaultWeights(), cfg.Matching.Weights)
}

func TestLoad_MissingRequired(t *testing.T) {
	setBase(t)
	t.Setenv("APP_NAME", "")
	t.Setenv("HTTP_PORT", " ")

	_, err := Load()
	require.Error(t, err)
	assert.ErrorIs(t, err, errMissingRequiredEnv)
	assert.Contains(t, err.Error(), "APP_NAME")
	assert.Contains(t, err.Error(), "HTTP_PORT")
}

func TestLoad_Overrides(t *testing.T) {
	setBase(t)
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_NAME", "talent")
	t.Setenv("DB_POOL_MAX_CONNS", "12")
	t.Setenv("REDIS_TTL", "30")
	t.Setenv("RUN_MIGRATIONS", "true")
	t.Setenv("MATCH_WEIGHT_COVERAGE", "50")
	t.Setenv("MATCH_WEIGHT_PROFICIENCY", "30")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.Database.Enabled())
	assert.Equal(t, int32(12), cfg.Database.PoolMaxConns)
	assert.Equal(t, 30*time.Second, cfg.Redis.TTL)
	assert.True(t, cfg.App.RunMigrations)
	assert.Equal(t, matching.Weights{Coverage: 50, Proficiency: 30, GPA: 10, Experience: 10}, cfg.Matching.Weights)
}

func TestLoad_WeightsMustSumTo100(t *testing.T) {
	setBase(t)
	t.Setenv("MATCH_WEIGHT_COVERAGE", "70")

	_, err := Load()
	require.Error(t, err)
	assert.ErrorIs(t, err, errInvalidEnv)
}

func TestLoad_InvalidNumber(t *testing.T) {
	setBase(t)
	t.Setenv("DB_POOL_MAX_CONNS", "many")

	_, err := Load()
	require.Error(t, err)
	assert.ErrorIs(t, err, errInvalidEnv)
	assert.Contains(t, err.Error(), "DB_POOL_MAX_CONNS")
}

func TestLoadMatching_WithoutAppEnv(t *testing.T) {
	setBase(t)
	t.Setenv("APP_NAME", "")
	t.Setenv("MATCH_WEIGHT_GPA", "5")
	t.Setenv("MATCH_WEIGHT_EXPERIENCE", "15")

	m, err := LoadMatching()
	require.NoError(t, err)
	assert.Equal(t, matching.Weights{Coverage: 60, Proficiency: 20, GPA: 5, Experience: 15}, m.Weights)
}

func TestLoadMatching_RejectsBadWeights(t *testing.T) {
	setBase(t)
	t.Setenv("APP_NAME", "")
	t.Setenv("MATCH_WEIGHT_COVERAGE", "70")

	_, err := LoadMatching()
	require.Error(t, err)
	assert.ErrorIs(t, err, errInvalidEnv)

	t.Setenv("MATCH_WEIGHT_COVERAGE", "lots")
	_, err = LoadMatching()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MATCH_WEIGHT_COVERAGE")
}
