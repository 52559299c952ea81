package executor

import (
	"context"
	"fmt"

	"github.com/suisei-entertainment/sde/internal/builder"
	"github.com/suisei-entertainment/sde/internal/errors"
	"github.com/suisei-entertainment/sde/internal/logging"
	"github.com/suisei-entertainment/sde/internal/registry"
)

// LinterExecutor runs the linter for one component or for every
// configured component and reports the aggregated outcome.
type LinterExecutor struct {
	registry  *registry.Registry
	runner    builder.CommandRunner
	logger    logging.Logger
	collector *errors.Collector
}

// NewLinterExecutor creates a new linter executor.
func NewLinterExecutor(reg *registry.Registry, runner builder.CommandRunner, logger logging.Logger) *LinterExecutor {
	return &LinterExecutor{
		registry:  reg,
		runner:    runner,
		logger:    logger,
		collector: errors.NewCollector(),
	}
}

// Execute runs the linter in each selected component's linter directory.
// Every selected component is linted even when an earlier one reports
// findings.
func (e *LinterExecutor) Execute(ctx context.Context, component string) error {
	var components []*registry.ComponentDescriptor

	if component == AllComponents {
		components = e.registry.All()
	} else {
		desc, exists := e.registry.Get(component)
		if !exists {
			return errors.NewConfigError("component_not_found",
				fmt.Sprintf("component %s does not exist", component))
		}
		components = append(components, desc)
	}

	for _, desc := range components {
		e.logger.Info(ctx, "Executing linter", "component", desc.ID, "dir", desc.LinterDir)

		command := fmt.Sprintf("pylint -j 0 --reports=yes --rcfile=./.pylintrc %s", desc.LinterDir)

		if err := e.runner.Run(ctx, ".", command); err != nil {
			e.logger.Error(ctx, err, "Failed to execute linter", "component", desc.ID)
			e.collector.Add(errors.TestFailure{
				Component: desc.ID,
				Suite:     "linter",
				Message:   err.Error(),
				Severity:  errors.SeverityError,
			})
			continue
		}

		e.logger.Debug(ctx, "Linter executed successfully", "component", desc.ID)
	}

	if e.collector.HasFailures() {
		return errors.NewTestError("linter_failed",
			fmt.Sprintf("linter reported findings for %d component(s)", len(e.collector.Failures())), nil)
	}

	return nil
}
