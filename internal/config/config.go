// Package config loads the tool-wide defaults for the distancebytes
// CLI from a YAML file, typically ~/.distancebytes/config.yaml.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the CLI's persistent, user-editable defaults.
type Config struct {
	// OutputFormat is the default -format value of the read command:
	// "json", "yaml", or "bytes".
	OutputFormat string `yaml:"outputFormat"`
	// LogLevel is the default slog level name: "debug", "info", "warn",
	// or "error".
	LogLevel string `yaml:"logLevel"`
	// WorkshopCacheDir names a directory for cached level packs. It is
	// loaded and saved with the rest of the config; no command reads it,
	// and nothing is cached there.
	WorkshopCacheDir string `yaml:"workshopCacheDir"`
}

// Default returns the configuration used when no config file exists.
func Default() Config {
	return Config{
		OutputFormat:     "json",
		LogLevel:         "info",
		WorkshopCacheDir: defaultCacheDir(),
	}
}

func defaultCacheDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".distancebytes-cache"
	}
	return filepath.Join(home, ".distancebytes", "cache")
}

// DefaultPath returns the conventional config file location,
// ~/.distancebytes/config.yaml.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".distancebytes/config.yaml"
	}
	return filepath.Join(home, ".distancebytes", "config.yaml")
}

// Load reads and parses the config file at path, falling back to
// Default() (with no error) if the file does not exist.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path as YAML, creating parent directories as
// needed.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: create directory for %s: %w", path, err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("config: marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}
