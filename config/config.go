package config

import (
	"time"

	"github.com/dhamidi/calc/expr"
)

const (
	TrailingInputError = "error"
	TrailingInputAllow = "allow"
)

type Config struct {
	Parser ParserConfig `yaml:"parser"`
	Output OutputConfig `yaml:"output"`
	Log    LogConfig    `yaml:"log"`
	Watch  WatchConfig  `yaml:"watch"`
}

type ParserConfig struct {
	// TrailingInput is "error" or "allow".
	TrailingInput string `yaml:"trailing_input"`

	// MaxDepth limits parenthesis nesting. Zero selects the default and a
	// negative value removes the limit.
	MaxDepth int `yaml:"max_depth"`
}

type OutputConfig struct {
	Format string `yaml:"format"`
}

type LogConfig struct {
	Verbosity int    `yaml:"verbosity"`
	File      string `yaml:"file"`
}

type WatchConfig struct {
	Debounce   time.Duration `yaml:"debounce"`
	Extensions []string      `yaml:"extensions"`
}

// ParserOptions translates the parser section into expression options.
func (c *Config) ParserOptions() []expr.Option {
	var opts []expr.Option
	if c.Parser.TrailingInput == TrailingInputAllow {
		opts = append(opts, expr.AllowTrailingInput())
	}
	if c.Parser.MaxDepth != 0 {
		opts = append(opts, expr.WithMaxDepth(c.Parser.MaxDepth))
	}
	return opts
}
