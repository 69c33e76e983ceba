package config

import (
	"strconv"
	"strings"

	"github.com/caarlos0/env/v11"
)

// DefaultProbability is used when DT_PROBABILITY is absent or unparseable
const DefaultProbability = 0.5

// Config holds the application configuration
type Config struct {
	Port        string `env:"PORT" envDefault:"3000"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	DatabaseURL string `env:"DATABASE_URL"`

	// Distributed-tracing forwarding
	ServiceName   string `env:"SERVICE_NAME" envDefault:"storefront"`
	PeerServices  string `env:"PEER_SERVICES"` // Comma-separated
	DTProbability string `env:"DT_PROBABILITY"`
	PeerPort      int    `env:"PEER_PORT" envDefault:"3000"`

	// Stats cache
	RedisAddr string `env:"REDIS_ADDR"`

	// Telemetry
	OTLPEndpoint string `env:"OTLP_ENDPOINT"`
	Environment  string `env:"ENVIRONMENT" envDefault:"development"`

	// RUM agent config served at /rum_config.js
	RUMServerURL      string `env:"RUM_SERVER_URL"`
	RUMServiceName    string `env:"RUM_SERVICE_NAME"`
	RUMServiceVersion string `env:"RUM_SERVICE_VERSION"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Probability parses the configured forwarding probability.
// A missing or malformed value falls back to DefaultProbability; the
// parsed value is intentionally not clamped to [0,1].
func (c *Config) Probability() float64 {
	if c.DTProbability == "" {
		return DefaultProbability
	}
	p, err := strconv.ParseFloat(strings.TrimSpace(c.DTProbability), 64)
	if err != nil {
		return DefaultProbability
	}
	return p
}

// TracingEnabled returns true if an OTLP endpoint is configured
func (c *Config) TracingEnabled() bool {
	return c.OTLPEndpoint != ""
}

// CacheEnabled returns true if a Redis address is configured
func (c *Config) CacheEnabled() bool {
	return c.RedisAddr != ""
}
