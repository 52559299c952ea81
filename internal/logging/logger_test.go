package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	testCases := []struct {
		input    string
		expected LogLevel
	}{
		{"DEBUG", LevelDebug},
		{"debug", LevelDebug},
		{"INFO", LevelInfo},
		{"WARNING", LevelWarn},
		{"WARN", LevelWarn},
		{"ERROR", LevelError},
		{"FATAL", LevelFatal},
		{"", LevelInfo},
		{"VERBOSE", LevelInfo},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, tc.expected, ParseLevel(tc.input))
		})
	}
}

func TestLogLevelString(t *testing.T) {
	assert.Equal(t, "DEBUG", LevelDebug.String())
	assert.Equal(t, "INFO", LevelInfo.String())
	assert.Equal(t, "WARNING", LevelWarn.String())
	assert.Equal(t, "ERROR", LevelError.String())
	assert.Equal(t, "FATAL", LevelFatal.String())
}

func TestLoggerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer

	cfg := DefaultConfig()
	cfg.Level = LevelWarn
	cfg.Output = &buf

	logger := NewLogger(cfg)
	ctx := context.Background()

	logger.Debug(ctx, "debug message")
	logger.Info(ctx, "info message")
	assert.Empty(t, buf.String())

	logger.Warn(ctx, nil, "warn message")
	assert.Contains(t, buf.String(), "warn message")
}

func TestLoggerJSONOutputCarriesFields(t *testing.T) {
	var buf bytes.Buffer

	cfg := DefaultConfig()
	cfg.Format = "json"
	cfg.Output = &buf

	logger := NewLogger(cfg)
	logger.Info(context.Background(), "Executing build", "component", "seed")

	var record map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))

	assert.Equal(t, "Executing build", record["msg"])
	assert.Equal(t, "seed", record["component"])
}

func TestLoggerErrorField(t *testing.T) {
	var buf bytes.Buffer

	cfg := DefaultConfig()
	cfg.Format = "json"
	cfg.Output = &buf

	logger := NewLogger(cfg)
	logger.Error(context.Background(), fmt.Errorf("exit status 2"), "Build failed")

	var record map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "exit status 2", record["error"])
}

func TestLoggerWithComponent(t *testing.T) {
	var buf bytes.Buffer

	cfg := DefaultConfig()
	cfg.Format = "json"
	cfg.Output = &buf

	logger := NewLogger(cfg).WithComponent("seed")
	logger.Info(context.Background(), "message")

	var record map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "seed", record["component"])
}

func TestLoggerWithFields(t *testing.T) {
	var buf bytes.Buffer

	cfg := DefaultConfig()
	cfg.Format = "json"
	cfg.Output = &buf

	logger := NewLogger(cfg).With("mode", "build")
	logger.Info(context.Background(), "message")

	var record map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "build", record["mode"])
}

func TestFileLoggerWritesToFile(t *testing.T) {
	logDir := t.TempDir()

	cfg := DefaultConfig()
	fileLogger, err := NewFileLogger(cfg, logDir, "sde.log")
	require.NoError(t, err)
	defer fileLogger.Close()

	fileLogger.Info(context.Background(), "message in the file")

	// The handler writes directly to the file; check the content on disk.
	data, err := readAll(fileLogger.Path())
	require.NoError(t, err)
	assert.Contains(t, data, "message in the file")
}

func TestFileLoggerCreatesLogDirectory(t *testing.T) {
	logDir := t.TempDir() + "/nested/logs"

	fileLogger, err := NewFileLogger(DefaultConfig(), logDir, "sde.log")
	require.NoError(t, err)
	defer fileLogger.Close()

	fileLogger.Info(context.Background(), "first record")
	assert.Contains(t, fileLogger.Path(), "nested/logs")
}

func readAll(path string) (string, error) {
	data, err := os.ReadFile(path)
	return string(data), err
}

func TestMultiLoggerFansOut(t *testing.T) {
	var first, second bytes.Buffer

	firstCfg := DefaultConfig()
	firstCfg.Output = &first
	secondCfg := DefaultConfig()
	secondCfg.Output = &second

	logger := NewMultiLogger(NewLogger(firstCfg), NewLogger(secondCfg))
	logger.Info(context.Background(), "fan out")

	assert.Contains(t, first.String(), "fan out")
	assert.Contains(t, second.String(), "fan out")
}
