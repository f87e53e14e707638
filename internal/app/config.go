package app

import (
	"errors"

	"github.com/vk/txtopo/internal/render"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	// DeclPath points at a single .hcl declaration file or a directory of
	// them. Optional when serve mode is enabled.
	DeclPath string

	Format       render.Format
	ValidateOnly bool
	Summary      bool

	// ServePort enables the HTTP API when non-zero.
	ServePort int

	LogFormat string
	LogLevel  string
}

// NewConfig validates a Config and applies defaults.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.DeclPath == "" && cfg.ServePort == 0 {
		return nil, errors.New("a declaration path is required unless serve mode is enabled")
	}
	if cfg.Format == "" {
		cfg.Format = render.FormatASCII
	}
	return &cfg, nil
}
