package app

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/spf13/viper"
	"github.com/yourusername/clust/internal/client"
)

// ConfigFileName is the file looked up in the user config directory
const ConfigFileName = "clust.toml"

// Config holds the application configuration
type Config struct {
	// Path of the file the configuration was read from
	File string

	// Client selection
	Simulated bool

	// Real client metadata
	Kubeconfig string
	Context    string
	Clusters   []string
	Users      []string

	// Cache configuration
	CacheTTL time.Duration

	// UI configuration
	Locale string

	// Logging configuration
	LogLevel string
	LogFile  string
}

// Metadata returns the connection details handed to the real client
func (c *Config) Metadata() client.Metadata {
	return client.Metadata{
		DefaultContext: c.Context,
		Clusters:       c.Clusters,
		Users:          c.Users,
	}
}

// fileConfig is the on-disk shape written when no config file exists
type fileConfig struct {
	Simulated bool           `toml:"simulated"`
	Cluster   clusterSection `toml:"cluster"`
	UI        uiSection      `toml:"ui"`
	Cache     cacheSection   `toml:"cache"`
	Logging   loggingSection `toml:"logging"`
}

type clusterSection struct {
	Kubeconfig string   `toml:"kubeconfig,omitempty"`
	Context    string   `toml:"context,omitempty"`
	Clusters   []string `toml:"clusters,omitempty"`
	Users      []string `toml:"users,omitempty"`
}

type uiSection struct {
	Locale string `toml:"locale"`
}

type cacheSection struct {
	TTL string `toml:"ttl"`
}

type loggingSection struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

func defaultFileConfig() fileConfig {
	return fileConfig{
		Simulated: false,
		UI:        uiSection{Locale: "en"},
		Cache:     cacheSection{TTL: "0s"},
		Logging:   loggingSection{Level: "info", File: "/tmp/clust.log"},
	}
}

// DefaultConfigPath returns <user config dir>/clust.toml
func DefaultConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("no config directory found: %w", err)
	}
	return filepath.Join(dir, ConfigFileName), nil
}

// EnsureConfigFile writes the default configuration to path unless a file
// already exists there. It reports whether a file was created.
func EnsureConfigFile(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("failed to stat config %s: %w", path, err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, fmt.Errorf("could not create config directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return false, fmt.Errorf("could not write default config: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(defaultFileConfig()); err != nil {
		return false, fmt.Errorf("could not serialize default config: %w", err)
	}
	return true, nil
}

// LoadConfig loads configuration from file and environment. An empty
// configFile selects the default path, creating it with defaults if missing.
func LoadConfig(configFile string) (*Config, error) {
	if configFile == "" {
		path, err := DefaultConfigPath()
		if err != nil {
			return nil, err
		}
		if _, err := EnsureConfigFile(path); err != nil {
			return nil, err
		}
		configFile = path
	}

	v := viper.New()

	v.SetDefault("simulated", false)

	v.SetDefault("cluster.kubeconfig", "")
	v.SetDefault("cluster.context", "")
	v.SetDefault("cluster.clusters", []string{})
	v.SetDefault("cluster.users", []string{})

	v.SetDefault("cache.ttl", "0s")

	v.SetDefault("ui.locale", "en")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.file", "/tmp/clust.log")

	// Home kubeconfig default
	if home, err := os.UserHomeDir(); err == nil {
		v.SetDefault("cluster.kubeconfig", filepath.Join(home, ".kube", "config"))
	}

	v.SetConfigFile(configFile)
	v.SetConfigType("toml")

	v.SetEnvPrefix("CLUST")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", configFile, err)
	}

	cfg := &Config{
		File:       configFile,
		Simulated:  v.GetBool("simulated"),
		Kubeconfig: v.GetString("cluster.kubeconfig"),
		Context:    v.GetString("cluster.context"),
		Clusters:   v.GetStringSlice("cluster.clusters"),
		Users:      v.GetStringSlice("cluster.users"),
		CacheTTL:   v.GetDuration("cache.ttl"),
		Locale:     v.GetString("ui.locale"),
		LogLevel:   v.GetString("logging.level"),
		LogFile:    v.GetString("logging.file"),
	}

	// Normalise zero values in case configuration left them blank
	if cfg.CacheTTL < 0 {
		cfg.CacheTTL = 0
	}
	if cfg.Locale == "" {
		cfg.Locale = "en"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.LogFile == "" {
		cfg.LogFile = "/tmp/clust.log"
	}

	return cfg, nil
}
