package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultConfig returns the configuration that is materialized on first run
// when no sde.conf exists anywhere.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			LogFile:  "sde.log",
			LogDir:   "~/.sde/logs",
			LogLevel: "INFO",
		},
		DocumentationPath: "~/.sde/build/doc/development/html/index.html",
		ComponentPath:     DefaultComponentPath,
	}
}

// WriteDefault writes the default configuration file to the given path,
// creating the surrounding ~/.sde directory layout as needed.
func WriteDefault(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory %s: %w", dir, err)
	}

	if err := os.MkdirAll(filepath.Join(dir, "components"), 0755); err != nil {
		return fmt.Errorf("failed to create component directory: %w", err)
	}

	cfg := DefaultConfig()
	cfg.Version.Minor = 1
	cfg.Version.Release = "internal"
	cfg.Version.Meta.Codename = "Fujin"

	data, err := json.MarshalIndent(cfg, "", "    ")
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write the default configuration: %w", err)
	}

	return nil
}

// FindConfigFile locates the configuration file. The user's ~/.sde directory
// takes precedence over the current working directory. If neither file
// exists, a default configuration is written to the home location and its
// path returned.
func FindConfigFile() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	homePath := filepath.Join(home, ".sde", "sde.conf")
	if _, err := os.Stat(homePath); err == nil {
		return homePath, nil
	}

	cwd, err := os.Getwd()
	if err == nil {
		localPath := filepath.Join(cwd, "sde.conf")
		if _, err := os.Stat(localPath); err == nil {
			return localPath, nil
		}
	}

	if err := WriteDefault(homePath); err != nil {
		return "", err
	}

	return homePath, nil
}
