package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.LibraryDir == "" {
		t.Error("Expected LibraryDir to be set")
	}
	if cfg.LogFile == "" {
		t.Error("Expected LogFile to be set")
	}
	if cfg.Debounce != 250*time.Millisecond {
		t.Errorf("Expected Debounce to be 250ms, got %v", cfg.Debounce)
	}
	if cfg.PreviewMode != PreviewTerminal {
		t.Errorf("Expected PreviewMode to be terminal, got %q", cfg.PreviewMode)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  *Config
		wantErr bool
	}{
		{
			name:    "valid config",
			config:  DefaultConfig(),
			wantErr: false,
		},
		{
			name: "empty library_dir",
			config: &Config{
				LibraryDir:  "",
				LogFile:     "/tmp/test.log",
				Debounce:    250 * time.Millisecond,
				PreviewMode: PreviewTerminal,
			},
			wantErr: true,
		},
		{
			name: "empty log_file",
			config: &Config{
				LibraryDir:  "/path/to/notes",
				LogFile:     "",
				Debounce:    250 * time.Millisecond,
				PreviewMode: PreviewTerminal,
			},
			wantErr: true,
		},
		{
			name: "zero debounce",
			config: &Config{
				LibraryDir:  "/path/to/notes",
				LogFile:     "/tmp/test.log",
				Debounce:    0,
				PreviewMode: PreviewTerminal,
			},
			wantErr: true,
		},
		{
			name: "invalid preview mode",
			config: &Config{
				LibraryDir:  "/path/to/notes",
				LogFile:     "/tmp/test.log",
				Debounce:    250 * time.Millisecond,
				PreviewMode: "hologram",
			},
			wantErr: true,
		},
		{
			name: "html preview mode",
			config: &Config{
				LibraryDir:  "/path/to/notes",
				LogFile:     "/tmp/test.log",
				Debounce:    250 * time.Millisecond,
				PreviewMode: PreviewHTML,
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfigSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	origPath := ConfigPath
	ConfigPath = func() string { return filepath.Join(dir, "config.json") }
	defer func() { ConfigPath = origPath }()

	cfg := &Config{
		LibraryDir:  filepath.Join(dir, "notes"),
		LogFile:     filepath.Join(dir, "inkwell.log"),
		Debounce:    500 * time.Millisecond,
		PreviewMode: PreviewHTML,
	}

	if err := cfg.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.LibraryDir != cfg.LibraryDir {
		t.Errorf("LibraryDir = %q, want %q", loaded.LibraryDir, cfg.LibraryDir)
	}
	if loaded.Debounce != 500*time.Millisecond {
		t.Errorf("Debounce = %v, want 500ms", loaded.Debounce)
	}
	if loaded.PreviewMode != PreviewHTML {
		t.Errorf("PreviewMode = %q, want html", loaded.PreviewMode)
	}
}

func TestLoadMissingReturnsDefaults(t *testing.T) {
	origPath := ConfigPath
	ConfigPath = func() string { return filepath.Join(t.TempDir(), "missing.json") }
	defer func() { ConfigPath = origPath }()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Debounce != DefaultConfig().Debounce {
		t.Errorf("expected default debounce, got %v", cfg.Debounce)
	}
}

func TestLoadInvalidDebounce(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	content := `{"library_dir": "/n", "log_file": "/tmp/l", "debounce": "soon"}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	origPath := ConfigPath
	ConfigPath = func() string { return path }
	defer func() { ConfigPath = origPath }()

	if _, err := Load(); err == nil {
		t.Error("expected error for unparsable debounce")
	}
}
