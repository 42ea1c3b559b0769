package config

import (
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
	"github.com/thenoetrevino/jot/internal/converters"
	"github.com/thenoetrevino/jot/internal/models"
)

// Defaults for the behavior section
const (
	DefaultUndoWindow    = 4 * time.Second
	DefaultDebounceDelay = 200 * time.Millisecond
	DefaultRemindAt      = "09:00"
)

// Config represents the application configuration
type Config struct {
	KeyMappings    KeyMappings       `yaml:"key_mappings"`
	ColorScheme    ColorScheme       `yaml:"theme"`
	CategoryColors map[string]string `yaml:"category_colors"`

	// Behavior
	UndoWindow    time.Duration `yaml:"undo_window"`
	DebounceDelay time.Duration `yaml:"debounce_delay"`
	DatabasePath  string        `yaml:"database_path"` // empty means ~/.jot/jot.db
	RemindAt      string        `yaml:"remind_at"`     // HH:MM, local time
}

// Default returns a config with every field set to its default
func Default() *Config {
	config := &Config{}
	config.applyDefaults()
	return config
}

// loadThemeFile loads and merges theme from JOT_THEME_FILE environment variable
func loadThemeFile(config *Config) {
	themeFile := os.Getenv("JOT_THEME_FILE")
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
		config.ColorScheme.Override(themeConfig.Theme)
	}
}

// Load loads config from the user's config directory
// Returns default config if file doesn't exist
func Load() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		// Return default config if we can't determine config path
		config := &Config{}
		loadThemeFile(config)
		config.applyDefaults()
		return config, nil
	}

	// Check if config file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		config := &Config{}
		loadThemeFile(config)
		config.applyDefaults()
		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	// Load theme from JOT_THEME_FILE if set
	loadThemeFile(&config)

	// Fill in any missing values with defaults
	config.applyDefaults()

	return &config, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// CategoryColor returns the configured preset for category, falling back to
// the built in one
func (c *Config) CategoryColor(category models.Category) string {
	if color, ok := c.CategoryColors[string(category)]; ok && color != "" {
		return color
	}
	return category.DefaultColor()
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "jot", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "jot", "config.yaml"), nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()

	if c.CategoryColors == nil {
		c.CategoryColors = map[string]string{}
	}
	for _, cat := range models.Categories {
		preset := cat.DefaultColor()
		c.CategoryColors[string(cat)] = converters.NormalizeColor(c.CategoryColors[string(cat)], preset)
	}

	if c.UndoWindow <= 0 {
		c.UndoWindow = DefaultUndoWindow
	}
	if c.DebounceDelay <= 0 {
		c.DebounceDelay = DefaultDebounceDelay
	}
	if _, err := time.Parse("15:04", c.RemindAt); err != nil {
		c.RemindAt = DefaultRemindAt
	}
}
