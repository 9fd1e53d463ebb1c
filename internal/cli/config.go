package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/mwendler/ribbons/pkg/pipeline"
)

// Config holds user defaults loaded from the TOML config file. All fields
// are optional; zero values defer to flag values and pipeline defaults.
type Config struct {
	Aspect     float64           `toml:"aspect"`
	FontSize   float64           `toml:"font_size"`
	Formats    []string          `toml:"formats"`
	RightColor bool              `toml:"right_color"`
	Colors     map[string]string `toml:"colors"` // label → #rrggbb
}

// configPath returns the config file location using the XDG standard
// (~/.config/ribbons/config.toml).
func configPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// loadConfig reads the user config file. A missing file is not an error
// and yields a zero Config.
func loadConfig() (Config, error) {
	path, err := configPath()
	if err != nil {
		return Config{}, nil
	}
	return loadConfigFile(path)
}

// loadConfigFile reads and decodes a TOML config file at path.
func loadConfigFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Config{}, nil
	}
	if err != nil {
		return Config{}, err
	}
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// applyTo fills unset pipeline options from the config. Flags that were
// set explicitly keep their values; pipeline defaults cover the rest.
func (cfg Config) applyTo(opts *pipeline.Options) {
	if opts.Aspect == 0 && cfg.Aspect > 0 {
		opts.Aspect = cfg.Aspect
	}
	if opts.FontSize == 0 && cfg.FontSize > 0 {
		opts.FontSize = cfg.FontSize
	}
	if len(opts.Formats) == 0 && len(cfg.Formats) > 0 {
		opts.Formats = cfg.Formats
	}
	if !opts.RightColor && cfg.RightColor {
		opts.RightColor = true
	}
	if len(cfg.Colors) > 0 {
		if opts.Colors == nil {
			opts.Colors = make(map[string]string, len(cfg.Colors))
		}
		for label, hex := range cfg.Colors {
			if _, ok := opts.Colors[label]; !ok {
				opts.Colors[label] = hex
			}
		}
	}
}
