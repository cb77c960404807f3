package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

// Config represents the inkwell configuration
type Config struct {
	LibraryDir  string        `json:"library_dir"`
	LogFile     string        `json:"log_file"`
	Debounce    time.Duration `json:"-"` // Custom JSON handling below
	PreviewMode string        `json:"preview_mode,omitempty"`
}

// Preview modes.
const (
	PreviewTerminal = "terminal" // glamour-styled markdown
	PreviewHTML     = "html"     // raw renderer output
)

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	home, _ := os.UserHomeDir()
	return &Config{
		LibraryDir:  filepath.Join(home, "Documents", "notes"),
		LogFile:     filepath.Join(os.TempDir(), "inkwell.log"),
		Debounce:    250 * time.Millisecond,
		PreviewMode: PreviewTerminal,
	}
}

// ConfigPath returns the path to the config file
// Uses ~/.config on all platforms for consistency
// Can be overridden for testing
var ConfigPath = func() string {
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to XDG if home dir unavailable
		return filepath.Join(xdg.ConfigHome, "inkwell", "config.json")
	}
	return filepath.Join(home, ".config", "inkwell", "config.json")
}

// Load reads configuration from the config directory
func Load() (*Config, error) {
	configPath := ConfigPath()
	data, err := os.ReadFile(configPath)
	if err != nil {
		// Return default config if file doesn't exist
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	// Use custom struct for JSON parsing to handle duration as string
	var raw struct {
		LibraryDir  string `json:"library_dir"`
		LogFile     string `json:"log_file"`
		Debounce    string `json:"debounce"`
		PreviewMode string `json:"preview_mode"`
	}

	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	debounce := DefaultConfig().Debounce
	if raw.Debounce != "" {
		debounce, err = time.ParseDuration(raw.Debounce)
		if err != nil {
			return nil, fmt.Errorf("invalid debounce format '%s': %w", raw.Debounce, err)
		}
	}

	previewMode := raw.PreviewMode
	if previewMode == "" {
		previewMode = PreviewTerminal
	}

	cfg := &Config{
		LibraryDir:  raw.LibraryDir,
		LogFile:     raw.LogFile,
		Debounce:    debounce,
		PreviewMode: previewMode,
	}

	// Validate config
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	// Expand paths
	if err := cfg.ExpandPaths(); err != nil {
		return nil, fmt.Errorf("failed to expand paths: %w", err)
	}

	return cfg, nil
}

// Save writes configuration to the config directory
func (c *Config) Save() error {
	configPath := ConfigPath()
	configDir := filepath.Dir(configPath)

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Use custom struct for JSON to handle duration as string
	raw := struct {
		LibraryDir  string `json:"library_dir"`
		LogFile     string `json:"log_file"`
		Debounce    string `json:"debounce"`
		PreviewMode string `json:"preview_mode,omitempty"`
	}{
		LibraryDir:  c.LibraryDir,
		LogFile:     c.LogFile,
		Debounce:    c.Debounce.String(),
		PreviewMode: c.PreviewMode,
	}

	data, err := json.MarshalIndent(raw, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.LibraryDir == "" {
		return fmt.Errorf("library_dir cannot be empty")
	}
	if c.LogFile == "" {
		return fmt.Errorf("log_file cannot be empty")
	}
	if c.Debounce <= 0 {
		return fmt.Errorf("debounce must be positive")
	}

	validModes := map[string]bool{
		PreviewTerminal: true,
		PreviewHTML:     true,
	}
	if !validModes[c.PreviewMode] {
		return fmt.Errorf("invalid preview_mode '%s': must be one of: terminal, html", c.PreviewMode)
	}

	return nil
}

// ExpandPaths expands any ~ or relative paths to absolute paths
func (c *Config) ExpandPaths() error {
	var err error

	c.LibraryDir, err = expandPath(c.LibraryDir)
	if err != nil {
		return fmt.Errorf("failed to expand library_dir: %w", err)
	}

	c.LogFile, err = expandPath(c.LogFile)
	if err != nil {
		return fmt.Errorf("failed to expand log_file: %w", err)
	}

	return nil
}

// expandPath expands ~ to home directory and converts to absolute path
func expandPath(path string) (string, error) {
	if path == "" {
		return path, nil
	}

	// Expand ~ to home directory
	if path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		if len(path) == 1 {
			return homeDir, nil
		}
		path = filepath.Join(homeDir, path[1:])
	}

	// Convert to absolute path
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	return absPath, nil
}
