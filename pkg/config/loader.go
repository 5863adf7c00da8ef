// Package config loads service configuration from YAML or JSON files with
// environment-variable overrides.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	yaml "gopkg.in/yaml.v3"
)

// Loader reads configuration files and applies env overrides with a fixed
// prefix.
type Loader struct {
	envPrefix string
}

// NewLoader creates a loader whose env overrides use prefix, e.g.
// "PIISCAN" binds PIISCAN_LISTEN_ADDR.
func NewLoader(envPrefix string) *Loader {
	return &Loader{envPrefix: envPrefix}
}

// LoadFromFile unmarshals configPath into config based on its extension.
// An empty path is a no-op so flag defaults stay in effect.
func (l *Loader) LoadFromFile(configPath string, config any) error {
	if configPath == "" {
		return nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	switch ext := strings.ToLower(filepath.Ext(configPath)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, config); err != nil {
			return fmt.Errorf("failed to parse YAML config file %s: %w", configPath, err)
		}
	case ".json":
		if err := json.Unmarshal(data, config); err != nil {
			return fmt.Errorf("failed to parse JSON config file %s: %w", configPath, err)
		}
	default:
		return fmt.Errorf("unsupported config file format: %s (supported: .yaml, .yml, .json)", ext)
	}

	return nil
}

// EnvString returns the override for key (upper-cased, prefix-joined) or
// fallback when unset.
func (l *Loader) EnvString(key, fallback string) string {
	if v, ok := os.LookupEnv(l.envName(key)); ok {
		return v
	}
	return fallback
}

// EnvBool reads a boolean override; unset or unparseable returns fallback.
func (l *Loader) EnvBool(key string, fallback bool) bool {
	v, ok := os.LookupEnv(l.envName(key))
	if !ok {
		return fallback
	}
	switch strings.ToLower(v) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return fallback
	}
}

func (l *Loader) envName(key string) string {
	key = strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
	if l.envPrefix == "" {
		return key
	}
	return l.envPrefix + "_" + key
}
