package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds runtime options for the web server.
type Config struct {
	Port       string        `env:"PORT" envDefault:"8080"`
	Addr       string        `env:"ABHAY_WEB_ADDR"`
	Dev        bool          `env:"ABHAY_WEB_DEV"`
	UIDir      string        `env:"ABHAY_WEB_UI_DIR" envDefault:"ui"`
	SiteURL    string        `env:"ABHAY_WEB_SITE_URL"`
	ContentTTL time.Duration `env:"ABHAY_WEB_CONTENT_TTL" envDefault:"5m"`
	LogLevel   string        `env:"LOG_LEVEL" envDefault:"info"`
}

// Load parses the configuration from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// ListenAddr prefers the explicit address, then the port.
func (c Config) ListenAddr() string {
	if c.Addr != "" {
		return c.Addr
	}
	return ":" + c.Port
}

// CacheTTL is the content cache duration; dev mode disables caching.
func (c Config) CacheTTL() time.Duration {
	if c.Dev {
		return 0
	}
	return c.ContentTTL
}
