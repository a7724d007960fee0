package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// ReportConfig sets how formatted reports render amounts.
type ReportConfig struct {
	Locale         string `env:"CALC_LOCALE" envDefault:"en-US"`
	CurrencySymbol string `env:"CALC_CURRENCY_SYMBOL" envDefault:"$"`
}

// ServerConfig configures the HTTP API. RedisAddr empty selects the in-memory cache.
type ServerConfig struct {
	Addr       string        `env:"CALC_ADDR" envDefault:":8080"`
	RedisAddr  string        `env:"CALC_REDIS_ADDR"`
	RateLimit  int           `env:"CALC_RATE_LIMIT" envDefault:"60"`
	RateWindow time.Duration `env:"CALC_RATE_WINDOW" envDefault:"1m"`
	CacheTTL   time.Duration `env:"CALC_CACHE_TTL" envDefault:"10m"`
	LogLevel   string        `env:"CALC_LOG_LEVEL" envDefault:"info"`
	ReportConfig
}

// LoadServerConfig reads ServerConfig from the environment.
func LoadServerConfig() (ServerConfig, error) {
	var cfg ServerConfig
	if err := env.Parse(&cfg); err != nil {
		return ServerConfig{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.RateLimit < 0 {
		return ServerConfig{}, fmt.Errorf("CALC_RATE_LIMIT must not be negative, got %d", cfg.RateLimit)
	}
	return cfg, nil
}

// LoadReportConfig reads ReportConfig from the environment.
func LoadReportConfig() (ReportConfig, error) {
	var cfg ReportConfig
	if err := env.Parse(&cfg); err != nil {
		return ReportConfig{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
