package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes environment overrides, e.g. CLINICTRACK_DATABASE_PATH.
const EnvPrefix = "CLINICTRACK"

// Config holds all application configuration. It is loaded from
// $XDG_CONFIG_HOME/clinictrack/config.yaml and can be overridden by
// environment variables.
type Config struct {
	Database DatabaseConfig `mapstructure:"database" yaml:"database"`
	Persist  PersistConfig  `mapstructure:"persist" yaml:"persist"`
	Logging  LoggingConfig  `mapstructure:"logging" yaml:"logging"`
	Clinic   ClinicConfig   `mapstructure:"clinic" yaml:"clinic"`
}

// DatabaseConfig locates the SQLite database.
type DatabaseConfig struct {
	// Path of the database file. Empty selects the XDG data directory.
	Path string `mapstructure:"path" yaml:"path"`
}

// PersistConfig tunes durable ledger writes.
type PersistConfig struct {
	// Timeout bounds one ledger write.
	Timeout time.Duration `mapstructure:"timeout" yaml:"timeout"`
}

// MarshalYAML writes the timeout in time.Duration string form.
func (p PersistConfig) MarshalYAML() (any, error) {
	return map[string]string{"timeout": p.Timeout.String()}, nil
}

// LoggingConfig controls the process logger.
type LoggingConfig struct {
	// Level is a zerolog level name: trace, debug, info, warn, error.
	Level string `mapstructure:"level" yaml:"level"`
	// Format is "console" or "json".
	Format string `mapstructure:"format" yaml:"format"`
}

// ClinicConfig identifies the clinic this installation serves.
type ClinicConfig struct {
	ID   string `mapstructure:"id" yaml:"id"`
	Name string `mapstructure:"name" yaml:"name"`
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Persist: PersistConfig{Timeout: 5 * time.Second},
		Logging: LoggingConfig{Level: "warn", Format: "console"},
		Clinic:  ClinicConfig{ID: "main", Name: "Clinic"},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/clinictrack/config.yaml, falling
// back to ~/.config.
func DefaultPath() (string, error) {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "clinictrack", "config.yaml"), nil
}

// Load reads configuration from the default path.
func Load() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return LoadFromPath(path)
}

// LoadFromPath reads configuration from path and merges environment
// overrides. If the file doesn't exist, it is created with default values.
func LoadFromPath(path string) (*Config, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create config directory: %w", err)
	}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := writeConfigFile(path, Default()); err != nil {
			return nil, fmt.Errorf("write default config: %w", err)
		}
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	setDefaults(v, Default())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// setDefaults registers every key so environment overrides apply even
// when the file omits them.
func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("database.path", d.Database.Path)
	v.SetDefault("persist.timeout", d.Persist.Timeout)
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)
	v.SetDefault("clinic.id", d.Clinic.ID)
	v.SetDefault("clinic.name", d.Clinic.Name)
}

// Validate checks the configuration for unusable values.
func (c *Config) Validate() error {
	if c.Persist.Timeout <= 0 {
		return fmt.Errorf("persist.timeout must be positive, got %s", c.Persist.Timeout)
	}
	if _, err := zerolog.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	return nil
}

func writeConfigFile(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
