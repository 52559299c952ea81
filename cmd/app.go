package cmd

import (
	"context"

	"github.com/suisei-entertainment/sde/internal/builder"
	"github.com/suisei-entertainment/sde/internal/config"
	"github.com/suisei-entertainment/sde/internal/logging"
	"github.com/suisei-entertainment/sde/internal/registry"
)

// appContext carries the application state shared by every subcommand: the
// loaded configuration, the logger writing to console and log file, the
// component registry and the command runner used for external tools.
type appContext struct {
	cfg        *config.Config
	logger     logging.Logger
	fileLogger *logging.FileLogger
	registry   *registry.Registry
	runner     builder.CommandRunner
}

// newAppContext loads the configuration, configures logging and populates
// the component registry. Configuration errors here are fatal: the caller
// reports them and exits nonzero.
func newAppContext(ctx context.Context) (*appContext, error) {
	if configReadErr != nil {
		return nil, configReadErr
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger, fileLogger := buildLogger(cfg)

	reg, err := registry.LoadDirectory(ctx, cfg.ComponentPath, logger)
	if err != nil {
		return nil, err
	}

	return &appContext{
		cfg:        cfg,
		logger:     logger,
		fileLogger: fileLogger,
		registry:   reg,
		runner:     builder.NewShellRunner(logger),
	}, nil
}

// buildLogger assembles the console logger and, when the log directory is
// usable, the file logger configured in sde.conf. Debug mode forces the
// debug level on both.
func buildLogger(cfg *config.Config) (logging.Logger, *logging.FileLogger) {
	level := logging.ParseLevel(cfg.Logging.LogLevel)
	if debugMode {
		level = logging.LevelDebug
	}

	consoleConfig := logging.DefaultConfig()
	consoleConfig.Level = level
	console := logging.NewLogger(consoleConfig)

	fileConfig := logging.DefaultConfig()
	fileConfig.Level = level
	fileConfig.Format = "text"

	fileLogger, err := logging.NewFileLogger(fileConfig, cfg.Logging.LogDir, cfg.Logging.LogFile)
	if err != nil {
		console.Warn(context.Background(), err, "Failed to open the log file, logging to console only")
		return console, nil
	}

	return logging.NewMultiLogger(console, fileLogger), fileLogger
}

// close releases the application context's resources.
func (a *appContext) close() {
	if a.fileLogger != nil {
		_ = a.fileLogger.Close()
	}
}
