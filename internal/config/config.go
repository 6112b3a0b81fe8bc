// Package config loads puzinspect settings from defaults, an optional
// config file and PUZINSPECT_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/logicossoftware/go-puz"
	"github.com/logicossoftware/go-puz/internal/logger"
)

// EnvPrefix is the prefix of environment variables that override settings.
// Example: PUZINSPECT_LOGGING_LEVEL=DEBUG
const EnvPrefix = "PUZINSPECT"

// Config is the resolved puzinspect configuration.
type Config struct {
	Logging LoggingConfig
	Limits  LimitsConfig
	Output  OutputConfig
}

type LoggingConfig struct {
	Level  string
	Format string
	Output string
}

type LimitsConfig struct {
	MaxInput        uint64
	MaxUncompressed uint64
}

type OutputConfig struct {
	Format      string
	Compression string
}

// Logger converts the logging section for logger.Init.
func (c *Config) Logger() logger.Config {
	return logger.Config{Level: c.Logging.Level, Format: c.Logging.Format, Output: c.Logging.Output}
}

// ReadLimits converts the limits section for puz.Decode.
// Zero values fall back to the library defaults.
func (c *Config) ReadLimits() puz.Limits {
	return puz.Limits{MaxInputLen: c.Limits.MaxInput, MaxUncompressedLen: c.Limits.MaxUncompressed}
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "INFO")
	v.SetDefault("logging.format", "text")
	v.SetDefault("logging.output", "stderr")
	v.SetDefault("limits.max_input", "16MB")
	v.SetDefault("limits.max_uncompressed", "16MB")
	v.SetDefault("output.format", "table")
	v.SetDefault("output.compression", "auto")
}

// New returns a viper instance wired for env overrides and an optional
// config file. configPath may be empty.
func New(configPath string) *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "puzinspect"))
		}
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	return v
}

// Load reads the config file if present and resolves the settings in v.
// A missing default config file is not an error; a missing explicit one is.
func Load(v *viper.Viper, explicit bool) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || explicit {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{
		Logging: LoggingConfig{
			Level:  v.GetString("logging.level"),
			Format: v.GetString("logging.format"),
			Output: v.GetString("logging.output"),
		},
		Limits: LimitsConfig{
			MaxInput:        uint64(v.GetSizeInBytes("limits.max_input")),
			MaxUncompressed: uint64(v.GetSizeInBytes("limits.max_uncompressed")),
		},
		Output: OutputConfig{
			Format:      v.GetString("output.format"),
			Compression: v.GetString("output.compression"),
		},
	}
	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// Validate checks the values that cannot be checked by the consumers later.
func Validate(cfg *Config) error {
	switch strings.ToUpper(cfg.Logging.Level) {
	case "DEBUG", "INFO", "WARN", "WARNING", "ERROR":
	default:
		return fmt.Errorf("logging.level: invalid value %q", cfg.Logging.Level)
	}
	switch strings.ToLower(cfg.Logging.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("logging.format: invalid value %q", cfg.Logging.Format)
	}
	if _, err := puz.ParseCompression(cfg.Output.Compression); err != nil {
		return fmt.Errorf("output.compression: %w", err)
	}
	return nil
}
