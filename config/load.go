package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"

	"github.com/tliron/commonlog"
	"gopkg.in/yaml.v3"
)

const logName = "calc.config"

// Load reads the YAML file at path, applies defaults and environment
// overrides, and validates the result. Unknown keys are rejected.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %q: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config %q: %w", path, err)
	}

	commonlog.GetLogger(logName).Debugf("loaded configuration from %s", path)
	return cfg, nil
}

// LoadOptional behaves like Load but returns the defaults when path does not
// exist.
func LoadOptional(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		commonlog.GetLogger(logName).Debugf("no configuration at %s, using defaults", path)
		cfg = Default()
		applyEnvOverrides(cfg)
		if err := Validate(cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}
	return cfg, err
}

// Parse decodes YAML configuration text.
func Parse(data []byte) (*Config, error) {
	var cfg Config

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}

	ApplyDefaults(&cfg)
	applyEnvOverrides(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if val := os.Getenv("CALC_TRAILING_INPUT"); val != "" {
		cfg.Parser.TrailingInput = val
	}
	if val := os.Getenv("CALC_MAX_DEPTH"); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			cfg.Parser.MaxDepth = n
		} else {
			commonlog.GetLogger(logName).Warningf("ignoring CALC_MAX_DEPTH=%q: %s", val, err)
		}
	}
	if val := os.Getenv("CALC_OUTPUT_FORMAT"); val != "" {
		cfg.Output.Format = val
	}
	if val := os.Getenv("CALC_LOG_FILE"); val != "" {
		cfg.Log.File = val
	}
}
