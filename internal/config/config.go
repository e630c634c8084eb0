package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"talent-sync/internal/domain/matching"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Matching MatchingConfig
}

type AppConfig struct {
	AppName       string
	Environment   string
	HTTPPort      string
	MigrationsDir string
	RunMigrations bool
}

type DatabaseConfig struct {
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	ConnectTimeout        time.Duration
	PoolMaxConns          int32
	PoolMinConns          int32
	PoolMaxConnLifetime   time.Duration
	PoolMaxConnIdleTime   time.Duration
	PoolHealthCheckPeriod time.Duration
}

// Enabled reports whether enough is configured to open a connection.
func (c DatabaseConfig) Enabled() bool {
	return c.DBHost != "" && c.DBName != ""
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	TTL      time.Duration
}

type MatchingConfig struct {
	Weights matching.Weights
}

var (
	errMissingRequiredEnv = errors.New("missing required environment variables")
	errInvalidEnv         = errors.New("invalid environment variables")
)

const defaultRedisTTL = 600 * time.Second

func Load() (Config, error) {
	cfg := Config{}

	var missing []string
	var invalid []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key string) string {
		return strings.TrimSpace(os.Getenv(key))
	}
	optInt := func(key string, def int) int {
		raw := opt(key)
		if raw == "" {
			return def
		}
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			invalid = append(invalid, key)
			return def
		}
		return v
	}
	optBool := func(key string) bool {
		raw := opt(key)
		if raw == "" {
			return false
		}
		v, err := strconv.ParseBool(raw)
		if err != nil {
			invalid = append(invalid, key)
			return false
		}
		return v
	}

	migrationsDir := opt("MIGRATIONS_DIR")
	if migrationsDir == "" {
		migrationsDir = "migrations"
	}

	cfg.App = AppConfig{
		AppName:       req("APP_NAME"),
		Environment:   req("APP_ENV"),
		HTTPPort:      req("HTTP_PORT"),
		MigrationsDir: migrationsDir,
		RunMigrations: optBool("RUN_MIGRATIONS"),
	}

	cfg.Database = DatabaseConfig{
		DBHost:         opt("DB_HOST"),
		DBPort:         opt("DB_PORT"),
		DBName:         opt("DB_NAME"),
		DBUser:         opt("DB_USER"),
		DBPassword:     opt("DB_PASSWORD"),
		DBSSLMode:      opt("DB_SSL_MODE"),
		ConnectTimeout: time.Duration(optInt("DB_CONNECT_TIMEOUT", 5)) * time.Second,
		PoolMaxConns:   int32(optInt("DB_POOL_MAX_CONNS", 0)),
		PoolMinConns:   int32(optInt("DB_POOL_MIN_CONNS", 0)),
	}
	if cfg.Database.DBPort == "" {
		cfg.Database.DBPort = "5432"
	}
	if cfg.Database.DBSSLMode == "" {
		cfg.Database.DBSSLMode = "disable"
	}

	ttl := optInt("REDIS_TTL", 0)
	cfg.Redis = RedisConfig{
		Host:     opt("REDIS_HOST"),
		Port:     opt("REDIS_PORT"),
		Password: opt("REDIS_PASSWORD"),
		TTL:      time.Duration(ttl) * time.Second,
	}
	if cfg.Redis.Host == "" {
		cfg.Redis.Host = "localhost"
	}
	if cfg.Redis.Port == "" {
		cfg.Redis.Port = "6379"
	}
	if ttl == 0 {
		cfg.Redis.TTL = defaultRedisTTL
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}
	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errInvalidEnv, strings.Join(invalid, ", "))
	}

	m, err := LoadMatching()
	if err != nil {
		return Config{}, err
	}
	cfg.Matching = m

	return cfg, nil
}

// LoadMatching reads only the MATCH_WEIGHT_* variables, defaulting each to
// matching.DefaultWeights. It needs none of the required app variables.
func LoadMatching() (MatchingConfig, error) {
	def := matching.DefaultWeights()
	var invalid []string
	weight := func(key string, fallback float64) float64 {
		raw := strings.TrimSpace(os.Getenv(key))
		if raw == "" {
			return fallback
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			invalid = append(invalid, key)
			return fallback
		}
		return v
	}

	w := matching.Weights{
		Coverage:    weight("MATCH_WEIGHT_COVERAGE", def.Coverage),
		Proficiency: weight("MATCH_WEIGHT_PROFICIENCY", def.Proficiency),
		GPA:         weight("MATCH_WEIGHT_GPA", def.GPA),
		Experience:  weight("MATCH_WEIGHT_EXPERIENCE", def.Experience),
	}
	if len(invalid) > 0 {
		return MatchingConfig{}, fmt.Errorf("%w: %s", errInvalidEnv, strings.Join(invalid, ", "))
	}
	if err := w.Validate(); err != nil {
		return MatchingConfig{}, fmt.Errorf("%w: MATCH_WEIGHT_*: %v", errInvalidEnv, err)
	}
	return MatchingConfig{Weights: w}, nil
}
