package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "sde.log", cfg.Logging.LogFile)
	assert.Equal(t, "INFO", cfg.Logging.LogLevel)
	assert.NotEmpty(t, cfg.DocumentationPath)
	assert.Equal(t, DefaultComponentPath, cfg.ComponentPath)
}

func TestWriteDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".sde", "sde.conf")

	require.NoError(t, WriteDefault(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var cfg Config
	require.NoError(t, json.Unmarshal(data, &cfg))

	assert.Equal(t, 0, cfg.Version.Major)
	assert.Equal(t, 1, cfg.Version.Minor)
	assert.Equal(t, "internal", cfg.Version.Release)
	assert.Equal(t, "Fujin", cfg.Version.Meta.Codename)
	assert.Equal(t, "sde.log", cfg.Logging.LogFile)

	// The component directory is part of the materialized layout.
	info, err := os.Stat(filepath.Join(filepath.Dir(path), "components"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
