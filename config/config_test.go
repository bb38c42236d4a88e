package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dhamidi/calc/expr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, TrailingInputError, cfg.Parser.TrailingInput)
	assert.Equal(t, expr.DefaultMaxDepth, cfg.Parser.MaxDepth)
	assert.Equal(t, "text", cfg.Output.Format)
	assert.Equal(t, 100*time.Millisecond, cfg.Watch.Debounce)
	assert.Equal(t, []string{".calc"}, cfg.Watch.Extensions)
	require.NoError(t, Validate(cfg))
}

func TestParseEmpty(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(`
parser:
  trailing_input: allow
  max_depth: 8
output:
  format: json
log:
  verbosity: 2
  file: calc.log
watch:
  debounce: 250ms
  extensions: [".calc", ".expr"]
`))
	require.NoError(t, err)

	assert.Equal(t, TrailingInputAllow, cfg.Parser.TrailingInput)
	assert.Equal(t, 8, cfg.Parser.MaxDepth)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.Equal(t, 2, cfg.Log.Verbosity)
	assert.Equal(t, "calc.log", cfg.Log.File)
	assert.Equal(t, 250*time.Millisecond, cfg.Watch.Debounce)
	assert.Equal(t, []string{".calc", ".expr"}, cfg.Watch.Extensions)

	p := expr.New(cfg.ParserOptions()...)
	assert.True(t, p.AllowsTrailingInput())
	assert.Equal(t, 8, p.MaxDepth())
}

func TestParseUnknownField(t *testing.T) {
	_, err := Parse([]byte("parser:\n  trailing: allow\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "field trailing not found")
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Parser.TrailingInput = "ignore"
	cfg.Output.Format = "xml"
	cfg.Watch.Extensions = []string{"calc"}

	err := Validate(cfg)
	require.Error(t, err)

	var verr ValidationError
	require.True(t, errors.As(err, &verr))
	require.Len(t, verr.Errors, 3)
	assert.Equal(t, "parser.trailing_input", verr.Errors[0].Field)
	assert.Equal(t, "output.format", verr.Errors[1].Field)
	assert.Equal(t, "watch.extensions[0]", verr.Errors[2].Field)
	assert.Contains(t, err.Error(), "configuration validation failed with 3 errors")
}

func TestValidateSingleError(t *testing.T) {
	cfg := Default()
	cfg.Log.Verbosity = -1

	err := Validate(cfg)
	assert.EqualError(t, err, "configuration validation failed: log.verbosity: must not be negative")
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("CALC_TRAILING_INPUT", "allow")
	t.Setenv("CALC_MAX_DEPTH", "-1")
	t.Setenv("CALC_OUTPUT_FORMAT", "json")
	t.Setenv("CALC_LOG_FILE", "/tmp/calc.log")

	cfg, err := Parse([]byte("parser:\n  trailing_input: error\n"))
	require.NoError(t, err)

	assert.Equal(t, TrailingInputAllow, cfg.Parser.TrailingInput)
	assert.Equal(t, -1, cfg.Parser.MaxDepth)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.Equal(t, "/tmp/calc.log", cfg.Log.File)

	p := expr.New(cfg.ParserOptions()...)
	assert.Equal(t, 0, p.MaxDepth())
}

func TestEnvOverrideInvalid(t *testing.T) {
	t.Setenv("CALC_TRAILING_INPUT", "sometimes")

	_, err := Parse(nil)
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "calc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output:\n  format: json\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Output.Format)

	require.NoError(t, os.WriteFile(path, []byte("output:\n  format: yaml\n"), 0o644))
	_, err = Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}

func TestLoadOptional(t *testing.T) {
	cfg, err := LoadOptional(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
