package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load(New(""), false)
	require.NoError(t, err)

	assert.Equal(t, "INFO", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.Equal(t, "stderr", cfg.Logging.Output)
	assert.Equal(t, uint64(16<<20), cfg.Limits.MaxInput)
	assert.Equal(t, uint64(16<<20), cfg.Limits.MaxUncompressed)
	assert.Equal(t, "table", cfg.Output.Format)
	assert.Equal(t, "auto", cfg.Output.Compression)

	l := cfg.ReadLimits()
	assert.Equal(t, cfg.Limits.MaxInput, l.MaxInputLen)
	assert.Equal(t, "INFO", cfg.Logger().Level)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "puzinspect.yaml")
	content := `
logging:
  level: debug
  format: json
limits:
  max_input: 64KB
output:
  format: yaml
  compression: gzip
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(New(path), true)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, uint64(64<<10), cfg.Limits.MaxInput)
	assert.Equal(t, uint64(16<<20), cfg.Limits.MaxUncompressed)
	assert.Equal(t, "yaml", cfg.Output.Format)
	assert.Equal(t, "gzip", cfg.Output.Compression)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("PUZINSPECT_LOGGING_LEVEL", "ERROR")
	t.Setenv("PUZINSPECT_LIMITS_MAX_UNCOMPRESSED", "1MB")
	t.Setenv("PUZINSPECT_OUTPUT_FORMAT", "json")

	cfg, err := Load(New(""), false)
	require.NoError(t, err)
	assert.Equal(t, "ERROR", cfg.Logging.Level)
	assert.Equal(t, uint64(1<<20), cfg.Limits.MaxUncompressed)
	assert.Equal(t, "json", cfg.Output.Format)
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing explicit file", func(t *testing.T) {
		_, err := Load(New(filepath.Join(t.TempDir(), "nope.yaml")), true)
		assert.Error(t, err)
	})

	t.Run("invalid level", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", t.TempDir())
		t.Setenv("PUZINSPECT_LOGGING_LEVEL", "LOUD")
		_, err := Load(New(""), false)
		assert.ErrorContains(t, err, "logging.level")
	})

	t.Run("invalid compression", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", t.TempDir())
		t.Setenv("PUZINSPECT_OUTPUT_COMPRESSION", "rar")
		_, err := Load(New(""), false)
		assert.ErrorContains(t, err, "output.compression")
	})
}

func TestValidate(t *testing.T) {
	cfg := &Config{
		Logging: LoggingConfig{Level: "warning", Format: "JSON"},
		Output:  OutputConfig{Compression: "zst"},
	}
	assert.NoError(t, Validate(cfg))

	cfg.Logging.Format = "xml"
	assert.ErrorContains(t, Validate(cfg), "logging.format")
}
