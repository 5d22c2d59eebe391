// Package config loads webcite settings.
//
// Precedence, highest first: command-line flags bound to the viper instance,
// WEBCITE_* environment variables, the optional config file, then defaults.
// Keys are dotted (fetch.timeout); the env form replaces dots with
// underscores (WEBCITE_FETCH_TIMEOUT).
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/gaurav-prasanna/webcite/core/fetch"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "WEBCITE"

// Config is the full runtime configuration.
type Config struct {
	Fetch  FetchConfig  `mapstructure:"fetch"`
	Output OutputConfig `mapstructure:"output"`
	Server ServerConfig `mapstructure:"server"`
	Log    LogConfig    `mapstructure:"log"`
}

// FetchConfig tunes the page fetcher.
type FetchConfig struct {
	Timeout      time.Duration `mapstructure:"timeout"`
	UserAgent    string        `mapstructure:"user_agent"`
	MaxBodyBytes int64         `mapstructure:"max_body_bytes"`
}

// OutputConfig controls where the cite command writes.
type OutputConfig struct {
	Dir string `mapstructure:"dir"`
}

// ServerConfig controls the serve command.
type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

// LogConfig selects the logger level and encoding.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("fetch.timeout", fetch.DefaultTimeout)
	v.SetDefault("fetch.user_agent", fetch.DefaultUserAgent)
	v.SetDefault("fetch.max_body_bytes", 0)
	v.SetDefault("output.dir", "")
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
}

// Load reads configuration into a Config. cfgFile may be empty, in which
// case only defaults, environment and bound flags apply.
func Load(v *viper.Viper, cfgFile string) (*Config, error) {
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate rejects settings the pipeline cannot run with.
func (c *Config) Validate() error {
	if c.Fetch.Timeout <= 0 {
		return fmt.Errorf("fetch.timeout must be positive, got %s", c.Fetch.Timeout)
	}
	if c.Fetch.MaxBodyBytes < 0 {
		return fmt.Errorf("fetch.max_body_bytes must not be negative, got %d", c.Fetch.MaxBodyBytes)
	}
	if strings.TrimSpace(c.Server.Addr) == "" {
		return fmt.Errorf("server.addr must not be empty")
	}
	return nil
}

// FetchOptions converts the fetch section into fetcher options.
func (c *Config) FetchOptions() fetch.Options {
	return fetch.Options{
		Timeout:      c.Fetch.Timeout,
		UserAgent:    c.Fetch.UserAgent,
		MaxBodyBytes: c.Fetch.MaxBodyBytes,
	}
}
