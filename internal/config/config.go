// Package config loads command configuration from the environment, an
// optional .env file and an optional config file.
//
// Precedence, highest first: environment variables, config file, defaults.
// Every key can be set as TOOLSCHEMA_<KEY>; the API key is also read from
// OPENAI_API_KEY.
package config

import (
	"log/slog"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/spetersoncode/toolschema"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "TOOLSCHEMA"

// Defaults.
const (
	DefaultModel       = "gpt-4o"
	DefaultBaseURL     = "https://api.openai.com/v1/"
	DefaultLogLevel    = "info"
	DefaultTimeout     = 2 * time.Minute
	DefaultMaxAttempts = 3
)

// Config holds the settings of the toolschema command.
type Config struct {
	APIKey      string        `mapstructure:"api_key"`
	Model       string        `mapstructure:"model" validate:"required"`
	BaseURL     string        `mapstructure:"base_url" validate:"required,url"`
	LogLevel    string        `mapstructure:"log_level" validate:"oneof=debug info warn error"`
	Timeout     time.Duration `mapstructure:"timeout" validate:"gt=0"`
	MaxAttempts int           `mapstructure:"max_attempts" validate:"min=1"`
}

// envVars maps config keys to additional environment variables.
var envVars = map[string][]string{
	"api_key": {"OPENAI_API_KEY"},
}

// Options control where Load looks for configuration.
type Options struct {
	// ConfigFile is an optional YAML, JSON or TOML file.
	ConfigFile string
	// EnvFiles are loaded into the process environment before reading it.
	// Missing files are ignored. Defaults to ".env".
	EnvFiles []string
}

// Load reads and validates the configuration.
//
// A missing API key is not an error here; callers that need one use
// RequireAPIKey.
func Load(opts Options) (*Config, error) {
	envFiles := opts.EnvFiles
	if envFiles == nil {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		// godotenv never overrides variables that are already set.
		_ = godotenv.Load(f)
	}

	v := viper.New()
	v.SetDefault("api_key", "")
	v.SetDefault("model", DefaultModel)
	v.SetDefault("base_url", DefaultBaseURL)
	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("timeout", DefaultTimeout)
	v.SetDefault("max_attempts", DefaultMaxAttempts)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	for key, names := range envVars {
		args := append([]string{key, EnvPrefix + "_" + strings.ToUpper(key)}, names...)
		if err := v.BindEnv(args...); err != nil {
			return nil, errors.Wrapf(err, "bind environment for %s", key)
		}
	}

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "read config file %s", opts.ConfigFile)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "decode config")
	}
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &cfg, nil
}

// RequireAPIKey returns the API key, or a configuration-missing error when
// none is set.
func (c *Config) RequireAPIKey() (string, error) {
	if c.APIKey == "" {
		return "", toolschema.NewConfigError("no API key: set OPENAI_API_KEY or " + EnvPrefix + "_API_KEY")
	}
	return c.APIKey, nil
}

// SlogLevel converts LogLevel to a slog level.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
