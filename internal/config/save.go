package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Write saves to the --config path if one was given, otherwise to the
// user's config directory. It returns the path written.
func (c *Config) Write() (string, error) {
	path := ConfigPath()
	if path == "" {
		path = filepath.Join(ConfigDir(), "config.yaml")
	}
	return path, c.SaveTo(path)
}

// SaveTo writes the config to a specific path, creating parent
// directories as needed.
func (c *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	return os.WriteFile(path, data, 0644)
}
