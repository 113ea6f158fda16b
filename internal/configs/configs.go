package config

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	AppURL                 string
	DatabaseDriver         string
	DatabaseDSN            string
	DatabaseMaxOpenConns   int
	RateLimit              int
	RedisAddr              string
	RedisKeyPrefix         string
	ShutdownTimeoutSeconds int
}

const (
	DriverSQLite3 = "sqlite3"
	DriverSQLite  = "sqlite"
)

func Load() (Config, error) {
	appHost := getEnv("APP_HOST", "127.0.0.1")
	appPort := getEnv("APP_PORT", "8080")

	cfg := Config{
		AppURL:         fmt.Sprintf("%s:%s", appHost, appPort),
		DatabaseDriver: getEnv("DATABASE_DRIVER", DriverSQLite3),
		DatabaseDSN:    getEnv("DATABASE_DSN", "quicktask.db"),
		RedisAddr:      os.Getenv("REDIS_ADDR"),
		RedisKeyPrefix: getEnv("REDIS_KEY_PREFIX", "quicktask:ratelimit"),
	}

	var err error
	if cfg.DatabaseMaxOpenConns, err = getEnvAsInt("DATABASE_MAX_OPEN_CONNS", 1); err != nil {
		return Config{}, err
	}
	if cfg.RateLimit, err = getEnvAsInt("RATE_LIMIT_PER_MINUTE", 600); err != nil {
		return Config{}, err
	}
	if cfg.ShutdownTimeoutSeconds, err = getEnvAsInt("SHUTDOWN_TIMEOUT_SECONDS", 20); err != nil {
		return Config{}, err
	}

	if err := validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func validate(cfg Config) error {
	if cfg.DatabaseDriver != DriverSQLite3 && cfg.DatabaseDriver != DriverSQLite {
		return fmt.Errorf("DATABASE_DRIVER must be %q or %q", DriverSQLite3, DriverSQLite)
	}
	if cfg.DatabaseDSN == "" {
		return fmt.Errorf("DATABASE_DSN must not be empty")
	}
	if cfg.DatabaseMaxOpenConns <= 0 {
		return fmt.Errorf("DATABASE_MAX_OPEN_CONNS must be greater than 0")
	}
	if cfg.RateLimit <= 0 {
		return fmt.Errorf("RATE_LIMIT_PER_MINUTE must be greater than 0")
	}
	if cfg.ShutdownTimeoutSeconds <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT_SECONDS must be greater than 0")
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) (int, error) {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			return 0, fmt.Errorf("invalid integer value for %s: %q", key, v)
		}
		return i, nil
	}
	return defaultVal, nil
}
