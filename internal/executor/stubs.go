package executor

import (
	"context"

	"github.com/suisei-entertainment/sde/internal/logging"
)

// StubExecutor backs the modes that are present on the command line
// surface but have no implementation yet: feature tests, system tests,
// performance tests, the environment installer and release management.
type StubExecutor struct {
	mode   string
	logger logging.Logger
}

// NewStubExecutor creates an executor for a not yet implemented mode.
func NewStubExecutor(mode string, logger logging.Logger) *StubExecutor {
	return &StubExecutor{
		mode:   mode,
		logger: logger,
	}
}

// Execute reports that the mode is not implemented.
func (e *StubExecutor) Execute(ctx context.Context, component string) error {
	e.logger.Warn(ctx, nil, "Mode is not implemented yet",
		"mode", e.mode, "component", component)
	return nil
}
