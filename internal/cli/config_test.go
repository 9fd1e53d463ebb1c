package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mwendler/ribbons/pkg/pipeline"
)

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
aspect = 6.0
font_size = 10.0
formats = ["png", "svg"]
right_color = true

[colors]
a = "#ff0000"
b = "#00ff00"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfigFile(path)
	if err != nil {
		t.Fatalf("loadConfigFile() error = %v", err)
	}

	if cfg.Aspect != 6.0 {
		t.Errorf("Aspect = %v, want 6.0", cfg.Aspect)
	}
	if cfg.FontSize != 10.0 {
		t.Errorf("FontSize = %v, want 10.0", cfg.FontSize)
	}
	if len(cfg.Formats) != 2 || cfg.Formats[0] != "png" {
		t.Errorf("Formats = %v, want [png svg]", cfg.Formats)
	}
	if !cfg.RightColor {
		t.Error("RightColor should be true")
	}
	if cfg.Colors["a"] != "#ff0000" {
		t.Errorf("Colors[a] = %q, want #ff0000", cfg.Colors["a"])
	}
}

func TestLoadConfigFileMissing(t *testing.T) {
	cfg, err := loadConfigFile(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("missing config should not error, got %v", err)
	}
	if cfg.Aspect != 0 || len(cfg.Formats) != 0 {
		t.Errorf("missing config should be zero, got %+v", cfg)
	}
}

func TestLoadConfigFileInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("aspect = [not toml"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := loadConfigFile(path); err == nil {
		t.Error("invalid TOML should error")
	}
}

func TestConfigApplyTo(t *testing.T) {
	cfg := Config{
		Aspect:   6.0,
		FontSize: 10.0,
		Formats:  []string{"png"},
		Colors:   map[string]string{"a": "#ff0000", "b": "#00ff00"},
	}

	// Explicit values win over config values.
	opts := pipeline.Options{
		Aspect: 2.0,
		Colors: map[string]string{"a": "#123456"},
	}
	cfg.applyTo(&opts)

	if opts.Aspect != 2.0 {
		t.Errorf("Aspect = %v, flag value should win", opts.Aspect)
	}
	if opts.FontSize != 10.0 {
		t.Errorf("FontSize = %v, want config value 10.0", opts.FontSize)
	}
	if len(opts.Formats) != 1 || opts.Formats[0] != "png" {
		t.Errorf("Formats = %v, want [png]", opts.Formats)
	}
	if opts.Colors["a"] != "#123456" {
		t.Errorf("Colors[a] = %q, explicit color should win", opts.Colors["a"])
	}
	if opts.Colors["b"] != "#00ff00" {
		t.Errorf("Colors[b] = %q, want config color", opts.Colors["b"])
	}
}
