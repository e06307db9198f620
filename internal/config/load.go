package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is prepended to upper-cased keys for environment overrides,
// e.g. QUICKDATE_SERVER_ADDR for server.addr
const EnvPrefix = "QUICKDATE"

// ErrConfigExists is returned by WriteDefault when it would overwrite a file
var ErrConfigExists = errors.New("config file already exists")

type Config struct {
	TimeEnabled   bool         `yaml:"time_enabled"`
	DisplayLayout string       `yaml:"display_layout"`
	Log           LogConfig    `yaml:"log"`
	Cache         CacheConfig  `yaml:"cache"`
	Server        ServerConfig `yaml:"server"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type CacheConfig struct {
	Size int `yaml:"size"`
}

type ServerConfig struct {
	Addr            string `yaml:"addr"`
	Mode            string `yaml:"mode"`
	RateLimitPerMin int    `yaml:"rate_limit_per_min"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("time_enabled", true)
	v.SetDefault("display_layout", "Mon, Jan 2, 2006")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("cache.size", 512)
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.rate_limit_per_min", 600)
}

// Default returns the built-in configuration
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	return fromViper(v)
}

// Load reads configuration from path layered over the defaults, then applies
// QUICKDATE_* environment overrides. A missing file is not an error; an empty
// path skips the file entirely.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			v.SetConfigType("yaml")
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("failed to read config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to stat config %s: %w", path, err)
		}
	}

	cfg := fromViper(v)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func fromViper(v *viper.Viper) *Config {
	cfg := &Config{}
	cfg.TimeEnabled = v.GetBool("time_enabled")
	cfg.DisplayLayout = v.GetString("display_layout")
	cfg.Log.Level = v.GetString("log.level")
	cfg.Log.Format = v.GetString("log.format")
	cfg.Cache.Size = v.GetInt("cache.size")
	cfg.Server.Addr = v.GetString("server.addr")
	cfg.Server.Mode = v.GetString("server.mode")
	cfg.Server.RateLimitPerMin = v.GetInt("server.rate_limit_per_min")
	return cfg
}

// Validate checks values that would otherwise fail later at startup
func (c *Config) Validate() error {
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("log.format must be text or json, got %q", c.Log.Format)
	}
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("server.mode must be debug, release or test, got %q", c.Server.Mode)
	}
	if c.Cache.Size < 0 {
		return fmt.Errorf("cache.size must not be negative, got %d", c.Cache.Size)
	}
	if c.Server.RateLimitPerMin < 0 {
		return fmt.Errorf("server.rate_limit_per_min must not be negative, got %d", c.Server.RateLimitPerMin)
	}
	return nil
}

// YAML serialises the configuration
func (c *Config) YAML() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return data, nil
}

// WriteDefault writes the default configuration to path. An existing file is
// only replaced when force is set.
func WriteDefault(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s: %w", path, ErrConfigExists)
		}
	}

	data, err := Default().YAML()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
