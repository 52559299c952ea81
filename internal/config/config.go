// Package config provides configuration management for the SDE tool using
// Viper for flexible configuration loading from files and environment
// variables.
//
// The configuration lives in a JSON file (sde.conf), searched in ~/.sde and
// the current working directory, with environment variable overrides using
// the SDE_ prefix. It carries the product version, the logging section, the
// path of the built development documentation and the directory holding the
// component descriptor files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/suisei-entertainment/sde/internal/errors"
	"github.com/suisei-entertainment/sde/internal/version"
)

// Config is the top level SDE configuration.
type Config struct {
	Version           version.ProductVersion `json:"version"`
	Logging           LoggingConfig          `json:"logging"`
	DocumentationPath string                 `json:"documentationpath" mapstructure:"documentationpath"`
	ComponentPath     string                 `json:"componentpath" mapstructure:"componentpath"`
}

// LoggingConfig is the logging section of the configuration.
type LoggingConfig struct {
	LogFile  string `json:"logfile" mapstructure:"logfile"`
	LogDir   string `json:"logdir" mapstructure:"logdir"`
	LogLevel string `json:"loglevel" mapstructure:"loglevel"`
}

// DefaultComponentPath is used when the configuration does not name a
// component directory.
const DefaultComponentPath = "~/.sde/components/components/"

// Load unmarshals the configuration from viper and validates the keys
// required for startup. A missing version, logging section or documentation
// path is a fatal configuration error; a missing component path falls back
// to the default.
func Load() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, errors.NewConfigError("config_unmarshal", fmt.Sprintf("failed to parse configuration: %v", err))
	}

	if !viper.IsSet("version") {
		return nil, errors.NewConfigError("config_no_version",
			"no version information was found in the configuration file")
	}

	if !viper.IsSet("logging") {
		return nil, errors.NewConfigError("config_no_logging",
			"logging configuration is missing from the configuration file")
	}

	if !viper.IsSet("documentationpath") || config.DocumentationPath == "" {
		return nil, errors.NewConfigError("config_no_docpath",
			"documentation path was not found in the configuration file")
	}

	if config.ComponentPath == "" {
		config.ComponentPath = DefaultComponentPath
	}

	config.Logging.LogDir = ExpandPath(config.Logging.LogDir)
	config.DocumentationPath = ExpandPath(config.DocumentationPath)
	config.ComponentPath = ExpandPath(config.ComponentPath)

	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// validateConfig validates configuration values beyond bare presence.
func validateConfig(config *Config) error {
	if config.Logging.LogFile == "" || config.Logging.LogDir == "" {
		return errors.NewConfigError("config_logging_incomplete",
			"logging configuration requires both logfile and logdir")
	}

	switch strings.ToUpper(config.Logging.LogLevel) {
	case "DEBUG", "INFO", "WARNING", "ERROR", "FATAL":
	case "":
		config.Logging.LogLevel = "INFO"
	default:
		return errors.NewConfigError("config_bad_loglevel",
			fmt.Sprintf("unsupported log level %q in the configuration file", config.Logging.LogLevel))
	}

	return nil
}

// ExpandPath expands a leading ~ to the user's home directory and returns
// an absolute path.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}

	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}

	return abs
}
