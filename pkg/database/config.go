package database

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// LoadConfigFromEnv builds the database configuration from environment
// variables. DATABASE_URL, when set, takes precedence over the individual
// DB_* variables and is passed through as the connection string.
func LoadConfigFromEnv() (Config, error) {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		cfg := poolDefaults()
		cfg.URL = url
		return cfg, nil
	}

	port, err := envInt("DB_PORT", 5432)
	if err != nil {
		return Config{}, err
	}
	maxOpen, err := envInt("DB_MAX_OPEN_CONNS", 10)
	if err != nil {
		return Config{}, err
	}
	maxIdle, err := envInt("DB_MAX_IDLE_CONNS", 5)
	if err != nil {
		return Config{}, err
	}

	cfg := poolDefaults()
	cfg.Host = envOr("DB_HOST", "localhost")
	cfg.Port = port
	cfg.User = envOr("DB_USER", "numveil")
	cfg.Password = os.Getenv("DB_PASSWORD")
	cfg.Database = envOr("DB_NAME", "numveil")
	cfg.SSLMode = envOr("DB_SSLMODE", "disable")
	cfg.MaxOpenConns = maxOpen
	cfg.MaxIdleConns = maxIdle
	return cfg, nil
}

func poolDefaults() Config {
	return Config{
		MaxOpenConns:    10,
		MaxIdleConns:    5,
		ConnMaxLifetime: 30 * time.Minute,
		ConnMaxIdleTime: 5 * time.Minute,
	}
}

func envOr(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func envInt(key string, defaultVal int) (int, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, val, err)
	}
	return n, nil
}
