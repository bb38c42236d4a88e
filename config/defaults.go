package config

import (
	"time"

	"github.com/dhamidi/calc/expr"
)

const (
	DefaultPath          = ".calc.yaml"
	DefaultTrailingInput = TrailingInputError
	DefaultMaxDepth      = expr.DefaultMaxDepth
	DefaultOutputFormat  = "text"
	DefaultDebounce      = 100 * time.Millisecond
)

var DefaultExtensions = []string{".calc"}

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}

// ApplyDefaults fills zero-valued fields.
func ApplyDefaults(cfg *Config) {
	if cfg.Parser.TrailingInput == "" {
		cfg.Parser.TrailingInput = DefaultTrailingInput
	}
	if cfg.Parser.MaxDepth == 0 {
		cfg.Parser.MaxDepth = DefaultMaxDepth
	}
	if cfg.Output.Format == "" {
		cfg.Output.Format = DefaultOutputFormat
	}
	if cfg.Watch.Debounce == 0 {
		cfg.Watch.Debounce = DefaultDebounce
	}
	if len(cfg.Watch.Extensions) == 0 {
		cfg.Watch.Extensions = append([]string(nil), DefaultExtensions...)
	}
}
