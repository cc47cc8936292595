package config

import (
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds all application configuration.
type Config struct {
	// Upstream accounting API
	UpstreamBaseURL       string        `env:"UPSTREAM_BASE_URL"       envDefault:"http://localhost:3000"`
	UpstreamTimeout       time.Duration `env:"UPSTREAM_TIMEOUT"        envDefault:"10s"`
	UpstreamRetryInterval time.Duration `env:"UPSTREAM_RETRY_INTERVAL" envDefault:"500ms"`
	UpstreamRetryMax      time.Duration `env:"UPSTREAM_RETRY_MAX"      envDefault:"5s"`
	UpstreamRetryElapsed  time.Duration `env:"UPSTREAM_RETRY_ELAPSED"  envDefault:"30s"`

	// Redis snapshot cache (optional - leave REDIS_URL empty to disable)
	RedisURL         string        `env:"REDIS_URL"          envDefault:""`
	SnapshotCacheTTL time.Duration `env:"SNAPSHOT_CACHE_TTL" envDefault:"30s"`

	// HTTP Server
	HTTPPort            string        `env:"HTTP_PORT"             envDefault:"8080"`
	HTTPReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT"     envDefault:"30s"`
	HTTPWriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT"    envDefault:"30s"`
	HTTPIdleTimeout     time.Duration `env:"HTTP_IDLE_TIMEOUT"     envDefault:"60s"`
	HTTPShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`

	// Rate limiting (requests per second per client IP; zero disables)
	RateLimit      float64 `env:"RATE_LIMIT"       envDefault:"0"`
	RateLimitBurst int     `env:"RATE_LIMIT_BURST" envDefault:"20"`

	// Reporting timezone used for all calendar-date comparisons
	ReportingTimezone string `env:"REPORTING_TIMEZONE" envDefault:"UTC"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL"  envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	err := env.Parse(cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
