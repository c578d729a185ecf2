package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server       ServerConfig       `mapstructure:"server"`
	Dictionary   DictionaryConfig   `mapstructure:"dictionary"`
	Autocomplete AutocompleteConfig `mapstructure:"autocomplete"`
	Log          LogConfig          `mapstructure:"log"`
}

// ServerConfig holds server related configuration
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// DictionaryConfig describes the word list loaded at startup
type DictionaryConfig struct {
	Path        string `mapstructure:"path"`
	SkipInvalid bool   `mapstructure:"skip_invalid"`
}

// AutocompleteConfig bounds autocomplete responses
type AutocompleteConfig struct {
	DefaultLimit int `mapstructure:"default_limit"`
	MaxLimit     int `mapstructure:"max_limit"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Pretty bool   `mapstructure:"pretty"`
}

// LoadConfig loads configuration from defaults, an optional file and
// TRIE_-prefixed environment variables, in increasing priority.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix("trie")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "localhost")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", "5s")
	v.SetDefault("server.write_timeout", "10s")
	v.SetDefault("server.shutdown_timeout", "30s")

	v.SetDefault("dictionary.path", "")
	v.SetDefault("dictionary.skip_invalid", false)

	v.SetDefault("autocomplete.default_limit", 10)
	v.SetDefault("autocomplete.max_limit", 100)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)
}

// Addr returns the host:port the server listens on
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.Autocomplete.DefaultLimit <= 0 {
		return fmt.Errorf("autocomplete default_limit must be positive, got %d", c.Autocomplete.DefaultLimit)
	}
	if c.Autocomplete.MaxLimit < c.Autocomplete.DefaultLimit {
		return fmt.Errorf("autocomplete max_limit %d is below default_limit %d",
			c.Autocomplete.MaxLimit, c.Autocomplete.DefaultLimit)
	}
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.Log.Level, err)
	}

	return nil
}

// GetConfigPath returns the path to the first config file found
func GetConfigPath() (string, error) {
	// Look for config in the following locations:
	// 1. Current directory
	// 2. ./configs/
	// 3. /etc/prefix-trie/

	configName := "config"
	configType := "yaml"
	configPaths := []string{
		".",
		"./configs",
		"/etc/prefix-trie",
	}

	for _, path := range configPaths {
		configPath := filepath.Join(path, configName+"."+configType)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}
	}

	return "", fmt.Errorf("config file not found in any of the default locations")
}
