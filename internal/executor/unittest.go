package executor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/suisei-entertainment/sde/internal/builder"
	"github.com/suisei-entertainment/sde/internal/config"
	"github.com/suisei-entertainment/sde/internal/errors"
	"github.com/suisei-entertainment/sde/internal/logging"
	"github.com/suisei-entertainment/sde/internal/registry"
)

// AllComponents selects every configured component for test and lint runs.
const AllComponents = "all"

// scratchDir is recreated empty before every test run so suites can write
// temporary files without leaking state between runs.
const scratchDir = "~/.sde/testfiles/"

// UnitTestExecutor runs the unit test suites of one component or of every
// configured component. Every selected suite runs even when an earlier one
// fails; the overall outcome is a failure if any suite failed.
type UnitTestExecutor struct {
	registry  *registry.Registry
	runner    builder.CommandRunner
	logger    logging.Logger
	collector *errors.Collector
}

// NewUnitTestExecutor creates a new unit test executor.
func NewUnitTestExecutor(reg *registry.Registry, runner builder.CommandRunner, logger logging.Logger) *UnitTestExecutor {
	return &UnitTestExecutor{
		registry:  reg,
		runner:    runner,
		logger:    logger,
		collector: errors.NewCollector(),
	}
}

// Execute runs the selected test suites and reports the aggregated
// outcome.
func (e *UnitTestExecutor) Execute(ctx context.Context, component string) error {
	if err := e.prepareScratchDir(); err != nil {
		return err
	}

	components, err := e.selectComponents(component)
	if err != nil {
		return err
	}

	for _, desc := range components {
		if !desc.HasUnitTests() {
			e.logger.Debug(ctx, "Component has no unit tests", "component", desc.ID)
			continue
		}

		e.logger.Info(ctx, "Executing unit tests", "component", desc.ID)

		if err := e.runSuite(ctx, desc); err != nil {
			e.collector.Add(errors.TestFailure{
				Component: desc.ID,
				Suite:     desc.UnitTestDir,
				Message:   err.Error(),
				Severity:  errors.SeverityError,
			})
		}
	}

	e.logger.Debug(ctx, "All tests executed")

	if e.collector.HasFailures() {
		for _, failure := range e.collector.Failures() {
			e.logger.Error(ctx, &failure, "Test suite failed", "component", failure.Component)
		}
		return errors.NewTestError("unittest_failed",
			fmt.Sprintf("%d test suite(s) failed", len(e.collector.Failures())), nil)
	}

	return nil
}

// selectComponents resolves the component argument into descriptors.
func (e *UnitTestExecutor) selectComponents(component string) ([]*registry.ComponentDescriptor, error) {
	if component == AllComponents {
		return e.registry.All(), nil
	}

	desc, exists := e.registry.Get(component)
	if !exists {
		return nil, errors.NewConfigError("component_not_found",
			fmt.Sprintf("component %s does not exist", component))
	}

	return []*registry.ComponentDescriptor{desc}, nil
}

// runSuite runs the test suite of a single component, writing the report
// into the component's configured output directory.
func (e *UnitTestExecutor) runSuite(ctx context.Context, desc *registry.ComponentDescriptor) error {
	command := fmt.Sprintf("python3 -m unittest discover -s %s -p 'test_*.py'", desc.UnitTestDir)
	if desc.UnitTestVerbosity >= 2 {
		command += " -v"
	}

	if desc.UnitTestOutDir != "" {
		if err := os.MkdirAll(desc.UnitTestOutDir, 0755); err != nil {
			return errors.NewIOError("unittest_outdir",
				fmt.Sprintf("failed to create test report directory %s", desc.UnitTestOutDir), err)
		}

		report := filepath.Join(desc.UnitTestOutDir, reportFileName(desc))
		command = fmt.Sprintf("%s > %s 2>&1", command, report)
		e.logger.Debug(ctx, "Saving test output", "component", desc.ID, "report", report)
	}

	return e.runner.Run(ctx, desc.UnitTestDir, command)
}

// reportFileName derives the report file name from the configured log
// format; "{component}" in the format is replaced by the component ID.
func reportFileName(desc *registry.ComponentDescriptor) string {
	if desc.UnitTestLogFormat == "" {
		return desc.ID + ".log"
	}

	return strings.ReplaceAll(desc.UnitTestLogFormat, "{component}", desc.ID)
}

// prepareScratchDir recreates the shared scratch directory used by test
// suites.
func (e *UnitTestExecutor) prepareScratchDir() error {
	dir := config.ExpandPath(scratchDir)

	if err := os.RemoveAll(dir); err != nil {
		return errors.NewIOError("unittest_scratch", "failed to clean the test scratch directory", err)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.NewIOError("unittest_scratch", "failed to create the test scratch directory", err)
	}

	return nil
}
