// Package config provides configuration loading for boardd.
package config

import (
	"fmt"
	"strings"
	"time"
)

// Config is the top-level configuration for the daemon and the client.
type Config struct {
	Server ServerConfig `koanf:"server"`
	Redis  RedisConfig  `koanf:"redis"`
	Client ClientConfig `koanf:"client"`
	Log    LogConfig    `koanf:"log"`
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// RedisConfig holds key-value store configuration.
type RedisConfig struct {
	URL string `koanf:"url"`
}

// ClientConfig holds terminal client configuration.
type ClientConfig struct {
	// ServerURL is the base URL of the boardd HTTP API.
	ServerURL string `koanf:"server_url"`

	// PollInterval is how often the board view refetches state.
	PollInterval time.Duration `koanf:"poll_interval"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// Addr returns the listen address for the HTTP server.
func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// applyDefaults sets default values for missing configuration fields.
func applyDefaults(cfg *Config) {
	if cfg.Server.Host == "" {
		cfg.Server.Host = "localhost"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 10 * time.Second
	}
	if cfg.Redis.URL == "" {
		cfg.Redis.URL = "redis://localhost:6379"
	}
	if cfg.Client.ServerURL == "" {
		cfg.Client.ServerURL = fmt.Sprintf("http://%s:%d", cfg.Server.Host, cfg.Server.Port)
	}
	if cfg.Client.PollInterval == 0 {
		cfg.Client.PollInterval = 2 * time.Second
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "json"
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if !strings.HasPrefix(c.Redis.URL, "redis://") && !strings.HasPrefix(c.Redis.URL, "rediss://") {
		return fmt.Errorf("redis url must use redis:// or rediss:// scheme: %s", c.Redis.URL)
	}
	if c.Client.PollInterval < 100*time.Millisecond {
		return fmt.Errorf("poll interval too small: %s", c.Client.PollInterval)
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("invalid log format: %s (expected json or console)", c.Log.Format)
	}
	return nil
}
