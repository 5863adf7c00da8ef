package server

import (
	"fmt"

	"github.com/Varshith07827/AI-PII-Detector/pkg/pii"
	"github.com/Varshith07827/AI-PII-Detector/pkg/readers"
)

// Config collects everything the HTTP server needs.
type Config struct {
	ListenAddr     string   `yaml:"listen_addr" json:"listen_addr"`
	LogLevel       string   `yaml:"log_level" json:"log_level"`
	LogFormat      string   `yaml:"log_format" json:"log_format"`
	MaxUploadBytes int64    `yaml:"max_upload_bytes" json:"max_upload_bytes"`
	HistoryEnabled bool     `yaml:"history_enabled" json:"history_enabled"`
	HistoryPath    string   `yaml:"history_path" json:"history_path"`
	NERPreference  []string `yaml:"ner_preference" json:"ner_preference"`

	Service *pii.ServiceConfig `yaml:"service" json:"service"`
}

// DefaultConfig returns a runnable local configuration.
func DefaultConfig() *Config {
	return &Config{
		ListenAddr:     ":8080",
		LogLevel:       "info",
		LogFormat:      "json",
		MaxUploadBytes: readers.DefaultMaxFileSize,
		HistoryEnabled: false,
		HistoryPath:    "piiscan.db",
		Service:        pii.DefaultServiceConfig(),
	}
}

// Validate rejects configurations the server cannot run with.
func (c *Config) Validate() error {
	if c.ListenAddr == "" {
		return fmt.Errorf("listen_addr is required")
	}
	if c.MaxUploadBytes <= 0 {
		return fmt.Errorf("max_upload_bytes must be positive")
	}
	if c.HistoryEnabled && c.HistoryPath == "" {
		return fmt.Errorf("history_path is required when history is enabled")
	}
	return nil
}
