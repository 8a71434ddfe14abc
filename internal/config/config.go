package config

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/compozy/semver/pkg/semver"
	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

type Config struct {
	Prefix    string `mapstructure:"prefix"`
	Precision string `mapstructure:"precision"`
	Lenient   bool   `mapstructure:"lenient"`
	LogLevel  string `mapstructure:"log_level"`
	Output    string `mapstructure:"output"`
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		Prefix:    "",
		Precision: "full",
		Lenient:   false,
		LogLevel:  "warn",
		Output:    OutputText,
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if strings.IndexFunc(c.Prefix, unicode.IsSpace) >= 0 {
		return fmt.Errorf("prefix cannot contain whitespace: %q", c.Prefix)
	}
	if _, err := semver.ParsePrecision(c.Precision); err != nil {
		return fmt.Errorf("invalid precision: %w", err)
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level: %w", err)
	}
	switch c.Output {
	case OutputText, OutputJSON, OutputYAML:
	default:
		return fmt.Errorf("invalid output %q: expected text, json or yaml", c.Output)
	}
	return nil
}

// ComparePrecision returns the configured precision. Call Validate first.
func (c *Config) ComparePrecision() semver.Precision {
	p, _ := semver.ParsePrecision(c.Precision)
	return p
}

var keys = []string{"prefix", "precision", "lenient", "log_level", "output"}

// LoadConfig reads .semver.yaml from the working directory on fs, SEMVER_*
// environment variables and any flags in flags whose name matches a key with "-" for "_".
func LoadConfig(fs afero.Fs, flags *pflag.FlagSet) (*Config, error) {
	return load(viper.New(), fs, flags, ".")
}

func load(v *viper.Viper, fs afero.Fs, flags *pflag.FlagSet, configPaths ...string) (*Config, error) {
	v.SetFs(fs)
	v.SetConfigName(".semver")
	v.SetConfigType("yaml")
	for _, p := range configPaths {
		v.AddConfigPath(p)
	}
	v.SetEnvPrefix("SEMVER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	for _, key := range keys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind %s env: %w", key, err)
		}
		if flags == nil {
			continue
		}
		if f := flags.Lookup(strings.ReplaceAll(key, "_", "-")); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("failed to bind %s flag: %w", key, err)
			}
		}
	}
	defaults := DefaultConfig()
	v.SetDefault("prefix", defaults.Prefix)
	v.SetDefault("precision", defaults.Precision)
	v.SetDefault("lenient", defaults.Lenient)
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("output", defaults.Output)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &config, nil
}
