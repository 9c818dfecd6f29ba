package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Environment variables read by Load
const (
	EnvDatabase  = "ROSTER_DB"
	EnvThemeFile = "ROSTER_THEME_FILE"
)

// Config represents the application configuration
type Config struct {
	Database    DatabaseConfig `yaml:"database"`
	Logging     LoggingConfig  `yaml:"logging"`
	Metrics     MetricsConfig  `yaml:"metrics"`
	ColorScheme ColorScheme    `yaml:"theme"`
}

// DatabaseConfig locates the database file. An empty Path means ~/.roster/school.db.
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// LoggingConfig controls the log file
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn or error
	File  string `yaml:"file"`  // empty means ~/.roster/logs/roster.log
}

// MetricsConfig controls the optional Prometheus textfile
type MetricsConfig struct {
	Textfile string `yaml:"textfile"` // empty disables the textfile
}

// Default returns the configuration used when no file exists
func Default() *Config {
	config := &Config{
		ColorScheme: DefaultColorScheme(),
	}
	config.applyDefaults()
	return config
}

// loadThemeFile loads and merges theme from ROSTER_THEME_FILE environment variable
func loadThemeFile(config *Config) {
	themeFile := os.Getenv(EnvThemeFile)
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme ColorScheme `yaml:"theme"`
	}

	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		config.ColorScheme.MergeFrom(themeConfig.Theme)
	}
}

// Load loads config from the user's config directory
// Returns default config if file doesn't exist
func Load() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		// Return default config if we can't determine config path
		config := Default()
		finish(config)
		return config, nil
	}
	return LoadFrom(configPath)
}

// LoadFrom loads config from an explicit path.
// Returns default config if file doesn't exist
func LoadFrom(configPath string) (*Config, error) {
	// Check if config file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		config := Default()
		finish(config)
		return config, nil
	}

	// Read config file
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", configPath, err)
	}

	// Parse YAML
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", configPath, err)
	}

	// Fill in any missing values with defaults
	config.applyDefaults()
	finish(&config)

	return &config, nil
}

// finish applies the environment overrides
func finish(config *Config) {
	loadThemeFile(config)
	if path := strings.TrimSpace(os.Getenv(EnvDatabase)); path != "" {
		config.Database.Path = path
	}
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}
	return c.SaveTo(configPath)
}

// SaveTo saves the config to configPath
func (c *Config) SaveTo(configPath string) error {
	// Create config directory if it doesn't exist
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "roster", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "roster", "config.yaml"), nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	c.ColorScheme.ApplyDefaults()
}
