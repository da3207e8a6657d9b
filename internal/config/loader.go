package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

// envPrefix namespaces the environment variables the loader reads.
const envPrefix = "SOLACED_"

// maxConfigFileSize bounds how large a config file the loader accepts.
const maxConfigFileSize = 1024 * 1024

// Load reads configuration with the following precedence (highest first):
//
//  1. Environment variables (SOLACED_SERVER_PORT, SOLACED_LLM_API_KEY, ...)
//  2. YAML config file, when configPath is non-empty and the file exists
//  3. Defaults
//
// Environment variables map to config keys by stripping the prefix,
// lowercasing, and splitting on the first underscore:
//
//	SOLACED_SERVER_PORT     -> server.port
//	SOLACED_LLM_API_KEY     -> llm.api_key
//	SOLACED_STORAGE_BACKEND -> storage.backend
func Load(configPath string) (*Config, error) {
	k := koanf.New(".")

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			content, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
			if len(content) > maxConfigFileSize {
				return nil, fmt.Errorf("config file too large: %d bytes (max %d)", len(content), maxConfigFileSize)
			}
			if err := k.Load(rawbytes.Provider(content), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
			}
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		// SOLACED_SERVER_PORT -> server.port. Split on the first
		// underscore only: the remainder is the field name, which may
		// itself contain underscores (api_key).
		lower := strings.ToLower(strings.TrimPrefix(s, envPrefix))
		parts := strings.SplitN(lower, "_", 2)
		if len(parts) == 1 {
			return lower
		}
		return parts[0] + "." + parts[1]
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}
