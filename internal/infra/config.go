package infra

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config represents application configuration loaded from environment variables.
type Config struct {
	AppEnv           string
	Port             string
	DatabaseURL      string
	StorageDir       string
	GeoIPDBPath      string
	DBMaxConns       int
	DBMinConns       int
	HTTPReadTimeout  time.Duration
	HTTPWriteTimeout time.Duration
	HTTPIdleTimeout  time.Duration
	RateLimitPerMin  int
	GenerateDelayMin time.Duration
	GenerateDelayMax time.Duration
}

// LoadConfig loads configuration from environment variables and applies
// defaults where needed. DATABASE_URL is optional; without it the service
// runs on the local design archive.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		AppEnv:           getEnv("APP_ENV", "development"),
		Port:             getEnv("PORT", "8080"),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		StorageDir:       getEnv("STORAGE_DIR", "./data"),
		GeoIPDBPath:      os.Getenv("GEOIP_DB_PATH"),
		DBMaxConns:       getEnvInt("DB_MAX_CONNS", 10),
		DBMinConns:       getEnvInt("DB_MIN_CONNS", 1),
		HTTPReadTimeout:  time.Second * time.Duration(getEnvInt("HTTP_READ_TIMEOUT_SECONDS", 15)),
		HTTPWriteTimeout: time.Second * time.Duration(getEnvInt("HTTP_WRITE_TIMEOUT_SECONDS", 30)),
		HTTPIdleTimeout:  time.Second * time.Duration(getEnvInt("HTTP_IDLE_TIMEOUT_SECONDS", 60)),
		RateLimitPerMin:  getEnvInt("RATE_LIMIT_PER_MINUTE", 30),
		GenerateDelayMin: time.Millisecond * time.Duration(getEnvInt("GENERATE_DELAY_MIN_MS", 1000)),
		GenerateDelayMax: time.Millisecond * time.Duration(getEnvInt("GENERATE_DELAY_MAX_MS", 3000)),
	}

	if cfg.StorageDir == "" {
		return nil, fmt.Errorf("STORAGE_DIR is required")
	}
	if cfg.DBMaxConns < 1 || cfg.DBMinConns < 0 || cfg.DBMinConns > cfg.DBMaxConns {
		return nil, fmt.Errorf("DB_MIN_CONNS/DB_MAX_CONNS out of range")
	}
	if cfg.GenerateDelayMax < cfg.GenerateDelayMin {
		return nil, fmt.Errorf("GENERATE_DELAY_MAX_MS must be >= GENERATE_DELAY_MIN_MS")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}
