package executor

import (
	"context"
	"fmt"

	"github.com/suisei-entertainment/sde/internal/builder"
	"github.com/suisei-entertainment/sde/internal/logging"
	"github.com/suisei-entertainment/sde/internal/registry"
)

// CoverageExecutor runs the unit test suites under the coverage tool and
// produces a console and an HTML report.
type CoverageExecutor struct {
	registry *registry.Registry
	runner   builder.CommandRunner
	logger   logging.Logger
}

// NewCoverageExecutor creates a new coverage executor.
func NewCoverageExecutor(reg *registry.Registry, runner builder.CommandRunner, logger logging.Logger) *CoverageExecutor {
	return &CoverageExecutor{
		registry: reg,
		runner:   runner,
		logger:   logger,
	}
}

// Execute measures test coverage across every component with unit tests.
// A failing suite is logged and does not stop the run: the reports still
// cover everything that did execute.
func (e *CoverageExecutor) Execute(ctx context.Context) error {
	e.logger.Debug(ctx, "Running unit tests with coverage enabled")

	for _, desc := range e.registry.All() {
		if !desc.HasUnitTests() {
			continue
		}

		command := fmt.Sprintf(
			"coverage run --append -m unittest discover -s %s -p 'test_*.py'",
			desc.UnitTestDir)

		if err := e.runner.Run(ctx, desc.UnitTestDir, command); err != nil {
			e.logger.Error(ctx, err, "Coverage run failed", "component", desc.ID)
		}
	}

	if err := e.runner.Run(ctx, ".", "coverage report"); err != nil {
		return err
	}

	return e.runner.Run(ctx, ".", "coverage html")
}
