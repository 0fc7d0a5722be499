package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// 支援的資料庫驅動
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

const defaultSQLiteDSN = "file:autoservice.db?cache=shared"

// Config 從環境變數載入的應用設定
type Config struct {
	AppEnv string

	DBDriver          string
	DatabaseDSN       string
	DBMaxOpenConns    int
	DBMaxIdleConns    int
	DBConnMaxLifetime time.Duration

	LogLevel  string
	LogFormat string
}

// Load 讀取環境變數（可選的 .env 檔）並套用預設值
//
// DB_DRIVER=postgres 時 DATABASE_DSN 為必填。
func Load() (*Config, error) {
	_ = godotenv.Load()

	k := koanf.New(".")
	if err := k.Load(env.Provider("", ".", func(s string) string { return s }), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	cfg := &Config{
		AppEnv:            valueOrDefault(k.String("APP_ENV"), "development"),
		DBDriver:          strings.ToLower(valueOrDefault(k.String("DB_DRIVER"), DriverSQLite)),
		DatabaseDSN:       strings.TrimSpace(k.String("DATABASE_DSN")),
		DBMaxOpenConns:    parseInt(k.String("DB_MAX_OPEN_CONNS"), 10),
		DBMaxIdleConns:    parseInt(k.String("DB_MAX_IDLE_CONNS"), 5),
		DBConnMaxLifetime: parseDuration(k.String("DB_CONN_MAX_LIFETIME"), "30m"),
		LogLevel:          valueOrDefault(k.String("LOG_LEVEL"), "info"),
		LogFormat:         valueOrDefault(k.String("LOG_FORMAT"), "json"),
	}

	switch cfg.DBDriver {
	case DriverSQLite:
		if cfg.DatabaseDSN == "" {
			cfg.DatabaseDSN = defaultSQLiteDSN
		}
	case DriverPostgres:
		if cfg.DatabaseDSN == "" {
			return nil, errors.New("DATABASE_DSN is required when DB_DRIVER=postgres")
		}
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	return cfg, nil
}

// IsProduction APP_ENV 為 production
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.AppEnv, "production")
}

func valueOrDefault(value, fallback string) string {
	if strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value)
	}
	return fallback
}

func parseInt(value string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n < 0 {
		return fallback
	}
	return n
}

func parseDuration(value, fallback string) time.Duration {
	base := strings.TrimSpace(value)
	if base == "" {
		base = fallback
	}
	d, err := time.ParseDuration(base)
	if err != nil {
		d, _ = time.ParseDuration(fallback)
	}
	return d
}
