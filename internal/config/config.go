// Package config provides configuration loading for solaced.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/solaceworks/solaced/internal/kvstore"
	"github.com/solaceworks/solaced/internal/llm"
	"github.com/solaceworks/solaced/internal/logging"
)

// Storage backends.
const (
	StorageMemory = "memory"
	StorageFile   = "file"
	StorageRedis  = "redis"
)

// ErrInvalidConfig indicates invalid configuration values.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the root configuration.
type Config struct {
	Server  ServerConfig   `koanf:"server"`
	Logging logging.Config `koanf:"logging"`
	LLM     llm.Config     `koanf:"llm"`
	Storage StorageConfig  `koanf:"storage"`
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	// Host is the listen address. Empty means all interfaces.
	Host string `koanf:"host"`

	// Port is the listen port.
	Port int `koanf:"port"`

	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// StorageConfig selects and configures the key-value store backend.
type StorageConfig struct {
	// Backend is one of "memory", "file", or "redis".
	Backend string `koanf:"backend"`

	// Dir is the state directory for the file backend.
	Dir string `koanf:"dir"`

	// Redis configures the redis backend.
	Redis kvstore.RedisConfig `koanf:"redis"`
}

// Validate checks the whole configuration. The missing LLM API key is
// the one fatal misconfiguration with no default: the engine cannot
// respond without its completion backend.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("%w: server port %d out of range", ErrInvalidConfig, c.Server.Port)
	}

	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("logging: %w", err)
	}

	if err := c.LLM.Validate(); err != nil {
		return fmt.Errorf("llm: %w", err)
	}

	switch c.Storage.Backend {
	case StorageMemory:
	case StorageFile:
		if c.Storage.Dir == "" {
			return fmt.Errorf("%w: storage dir required for file backend", ErrInvalidConfig)
		}
	case StorageRedis:
		if err := c.Storage.Redis.Validate(); err != nil {
			return fmt.Errorf("storage: %w", err)
		}
	default:
		return fmt.Errorf("%w: unknown storage backend %q", ErrInvalidConfig, c.Storage.Backend)
	}

	return nil
}

// applyDefaults sets default values for missing configuration fields.
func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 10 * time.Second
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = logging.FormatJSON
	}

	if cfg.Storage.Backend == "" {
		cfg.Storage.Backend = StorageMemory
	}
	if cfg.Storage.Backend == StorageFile && cfg.Storage.Dir == "" {
		cfg.Storage.Dir = "data"
	}
}
