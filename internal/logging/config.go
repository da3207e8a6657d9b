package logging

import (
	"fmt"

	"go.uber.org/zap/zapcore"
)

// Valid output formats.
const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

// Config holds logger configuration.
type Config struct {
	// Level is the minimum enabled level (debug, info, warn, error).
	Level string `koanf:"level"`

	// Format selects the encoder: "json" or "console".
	Format string `koanf:"format"`

	// Fields are constant fields attached to every entry.
	Fields map[string]string `koanf:"fields"`
}

// NewDefaultConfig returns a production-oriented default configuration.
func NewDefaultConfig() *Config {
	return &Config{
		Level:  "info",
		Format: FormatJSON,
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if _, err := zapcore.ParseLevel(c.Level); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.Level, err)
	}
	if c.Format != FormatJSON && c.Format != FormatConsole {
		return fmt.Errorf("invalid log format %q (want %q or %q)", c.Format, FormatJSON, FormatConsole)
	}
	return nil
}
