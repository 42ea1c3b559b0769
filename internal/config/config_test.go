package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/thenoetrevino/jot/internal/models"
)

func TestDefaultKeyMappings(t *testing.T) {
	defaults := DefaultKeyMappings()

	if defaults.Quit != "q" {
		t.Errorf("Default Quit key = %s, want q", defaults.Quit)
	}
	if defaults.AddTask != "a" {
		t.Errorf("Default AddTask key = %s, want a", defaults.AddTask)
	}
	if defaults.TogglePriority != "p" {
		t.Errorf("Default TogglePriority key = %s, want p", defaults.TogglePriority)
	}
}

func TestLoadConfigWithoutFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("JOT_THEME_FILE", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() without config file failed: %v", err)
	}

	if cfg.KeyMappings.Quit != "q" {
		t.Errorf("Loaded config Quit key = %s, want q (default)", cfg.KeyMappings.Quit)
	}
	if cfg.UndoWindow != DefaultUndoWindow {
		t.Errorf("UndoWindow = %v, want %v", cfg.UndoWindow, DefaultUndoWindow)
	}
	if cfg.DebounceDelay != DefaultDebounceDelay {
		t.Errorf("DebounceDelay = %v, want %v", cfg.DebounceDelay, DefaultDebounceDelay)
	}
	if cfg.RemindAt != DefaultRemindAt {
		t.Errorf("RemindAt = %s, want %s", cfg.RemindAt, DefaultRemindAt)
	}
	if got := cfg.CategoryColor(models.CategoryWork); got != "#4fb9ff" {
		t.Errorf("CategoryColor(Work) = %s, want #4fb9ff", got)
	}
}

func TestLoadConfigWithFile(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tempDir)
	t.Setenv("JOT_THEME_FILE", "")

	configDir := filepath.Join(tempDir, "jot")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}

	configContent := `key_mappings:
  quit: "x"
  add_task: "n"
category_colors:
  Work: "tomato"
undo_window: 10s
debounce_delay: 50ms
database_path: /tmp/elsewhere.db
remind_at: "07:45"
`
	configPath := filepath.Join(configDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(configContent), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() with config file failed: %v", err)
	}

	if cfg.KeyMappings.Quit != "x" {
		t.Errorf("Loaded Quit key = %s, want x", cfg.KeyMappings.Quit)
	}
	if cfg.KeyMappings.AddTask != "n" {
		t.Errorf("Loaded AddTask key = %s, want n", cfg.KeyMappings.AddTask)
	}
	// Unspecified values should use defaults
	if cfg.KeyMappings.EditTask != "e" {
		t.Errorf("Loaded EditTask key = %s, want e (default)", cfg.KeyMappings.EditTask)
	}
	if cfg.UndoWindow != 10*time.Second {
		t.Errorf("UndoWindow = %v, want 10s", cfg.UndoWindow)
	}
	if cfg.DebounceDelay != 50*time.Millisecond {
		t.Errorf("DebounceDelay = %v, want 50ms", cfg.DebounceDelay)
	}
	if cfg.DatabasePath != "/tmp/elsewhere.db" {
		t.Errorf("DatabasePath = %s", cfg.DatabasePath)
	}
	if cfg.RemindAt != "07:45" {
		t.Errorf("RemindAt = %s, want 07:45", cfg.RemindAt)
	}
	if got := cfg.CategoryColor(models.CategoryWork); got != "#ff6347" {
		t.Errorf("CategoryColor(Work) = %s, want #ff6347", got)
	}
	if got := cfg.CategoryColor(models.CategoryPersonal); got != "#ff42c6" {
		t.Errorf("CategoryColor(Personal) = %s, want #ff42c6", got)
	}
}

func TestLoadConfigRejectsBadReminderTime(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tempDir)
	t.Setenv("JOT_THEME_FILE", "")

	configDir := filepath.Join(tempDir, "jot")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte("remind_at: \"25:99\"\n"), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.RemindAt != DefaultRemindAt {
		t.Errorf("RemindAt = %s, want default %s", cfg.RemindAt, DefaultRemindAt)
	}
}

func TestLoadConfigMalformedYAML(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tempDir)

	configDir := filepath.Join(tempDir, "jot")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte("key_mappings: [oops"), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	if _, err := Load(); err == nil {
		t.Error("Load() with malformed YAML should fail")
	}
}

func TestSaveConfig(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tempDir)
	t.Setenv("JOT_THEME_FILE", "")

	cfg := &Config{
		KeyMappings: KeyMappings{
			Quit:    "x",
			AddTask: "n",
		},
		UndoWindow: 6 * time.Second,
	}

	// Apply defaults to fill missing fields
	cfg.applyDefaults()

	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	configPath := filepath.Join(tempDir, "jot", "config.yaml")
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Fatalf("Config file not created at %s", configPath)
	}

	cfg2, err := Load()
	if err != nil {
		t.Fatalf("Load() after Save() failed: %v", err)
	}

	if cfg2.KeyMappings.Quit != "x" {
		t.Errorf("Reloaded Quit key = %s, want x", cfg2.KeyMappings.Quit)
	}
	if cfg2.KeyMappings.AddTask != "n" {
		t.Errorf("Reloaded AddTask key = %s, want n", cfg2.KeyMappings.AddTask)
	}
	if cfg2.UndoWindow != 6*time.Second {
		t.Errorf("Reloaded UndoWindow = %v, want 6s", cfg2.UndoWindow)
	}
}
