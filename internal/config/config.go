package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/spf13/viper"

	"marquee/internal/log"
)

// Config holds all application configuration
type Config struct {
	API     APIConfig    `mapstructure:"api"`
	Cache   CacheConfig  `mapstructure:"cache"`
	Search  SearchConfig `mapstructure:"search"`
	UI      UIConfig     `mapstructure:"ui"`
	Logging log.Config   `mapstructure:"logging"`
}

// APIConfig holds OMDb API settings
type APIConfig struct {
	Key     string `mapstructure:"key"`      // OMDb API key
	BaseURL string `mapstructure:"base_url"` // Override for testing
	Timeout int    `mapstructure:"timeout"`  // Request timeout in seconds
}

// CacheConfig holds response cache settings
type CacheConfig struct {
	TTLMinutes int `mapstructure:"ttl_minutes"` // Entry lifetime
	MaxEntries int `mapstructure:"max_entries"` // Capacity bound
}

// SearchConfig holds search behavior settings
type SearchConfig struct {
	DebounceMS int `mapstructure:"debounce_ms"` // Quiescence window for auto-search
}

// UIConfig holds UI configuration
type UIConfig struct {
	Theme string `mapstructure:"theme"` // Fallback when nothing persisted
}

// TTL returns the cache entry lifetime as a duration.
func (c CacheConfig) TTL() time.Duration {
	return time.Duration(c.TTLMinutes) * time.Minute
}

// Debounce returns the quiescence window as a duration.
func (c SearchConfig) Debounce() time.Duration {
	return time.Duration(c.DebounceMS) * time.Millisecond
}

// RequestTimeout returns the API request timeout as a duration.
func (c APIConfig) RequestTimeout() time.Duration {
	return time.Duration(c.Timeout) * time.Second
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		API: APIConfig{
			Key:     "",
			BaseURL: "https://www.omdbapi.com/",
			Timeout: 30,
		},
		Cache: CacheConfig{
			TTLMinutes: 5,
			MaxEntries: 256,
		},
		Search: SearchConfig{
			DebounceMS: 300,
		},
		UI: UIConfig{
			Theme: "dark",
		},
		Logging: log.Config{
			File:  defaultLogPath(),
			Level: "INFO",
		},
	}
}

// defaultLogPath returns the default log file path for the current OS
func defaultLogPath() string {
	return filepath.Join(DataDir(), "marquee.log")
}

// defaultConfigPath returns the default config directory for the current OS
func defaultConfigPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "marquee")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "marquee")
	}
}

// DataDir returns the directory for logs and the user data database.
func DataDir() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("LOCALAPPDATA"), "marquee")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "marquee")
	}
}

// LoadConfig loads configuration from file and environment
func LoadConfig() (*Config, error) {
	cfg := DefaultConfig()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(defaultConfigPath())
	viper.AddConfigPath(".")

	// Environment variable overrides (MARQUEE_API_KEY etc.)
	viper.SetEnvPrefix("MARQUEE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves the current configuration to file
func SaveConfig(cfg *Config) error {
	viper.Set("api.key", cfg.API.Key)
	viper.Set("api.base_url", cfg.API.BaseURL)
	viper.Set("api.timeout", cfg.API.Timeout)

	viper.Set("cache.ttl_minutes", cfg.Cache.TTLMinutes)
	viper.Set("cache.max_entries", cfg.Cache.MaxEntries)

	viper.Set("search.debounce_ms", cfg.Search.DebounceMS)

	viper.Set("ui.theme", cfg.UI.Theme)

	viper.Set("logging.file", cfg.Logging.File)
	viper.Set("logging.level", cfg.Logging.Level)

	return writeConfigFile()
}

// SaveAPIKey updates just the API key in the configuration
func SaveAPIKey(key string) error {
	viper.Set("api.key", key)
	return writeConfigFile()
}

func writeConfigFile() error {
	configPath := defaultConfigPath()
	if err := os.MkdirAll(configPath, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configFile := filepath.Join(configPath, "config.yaml")
	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// IsConfigured returns true if an API key is set
func (c *Config) IsConfigured() bool {
	return c.API.Key != ""
}
