// Package executor contains the sub-tools dispatched from the command
// line: the build executor that walks component dependencies and invokes
// builders, the unit test executor, the linter and coverage executors, and
// the placeholder executors for the not yet implemented modes.
package executor

import (
	"context"
	"fmt"

	"github.com/suisei-entertainment/sde/internal/builder"
	"github.com/suisei-entertainment/sde/internal/errors"
	"github.com/suisei-entertainment/sde/internal/logging"
	"github.com/suisei-entertainment/sde/internal/registry"
)

// BuildExecutor builds a component after building its transitive
// dependencies. Dependencies are built in the order first discovered by
// the dependency walk, each exactly once, before the target itself.
type BuildExecutor struct {
	registry *registry.Registry
	runner   builder.CommandRunner
	logger   logging.Logger
}

// NewBuildExecutor creates a new build executor.
func NewBuildExecutor(reg *registry.Registry, runner builder.CommandRunner, logger logging.Logger) *BuildExecutor {
	return &BuildExecutor{
		registry: reg,
		runner:   runner,
		logger:   logger,
	}
}

// Execute builds the given component. Builds are sequential and blocking;
// the first failing builder ends the run without rolling back components
// already built.
func (e *BuildExecutor) Execute(ctx context.Context, component string) error {
	desc, exists := e.registry.Get(component)
	if !exists {
		return errors.NewConfigError("component_not_found",
			fmt.Sprintf("component %s does not exist", component))
	}

	if desc.HasDependencies() {
		if err := e.buildDependencies(ctx, component); err != nil {
			return err
		}
	}

	return e.buildOne(ctx, desc)
}

// buildDependencies resolves and builds every transitive dependency of the
// component.
func (e *BuildExecutor) buildDependencies(ctx context.Context, component string) error {
	deps, err := e.registry.Resolve(component)
	if err != nil {
		return err
	}

	for _, dep := range deps {
		desc, exists := e.registry.Get(dep)
		if !exists {
			return errors.NewDependencyError("resolve_unknown_dependency",
				fmt.Sprintf("component %s depends on unknown component %s", component, dep))
		}

		if err := e.buildOne(ctx, desc); err != nil {
			return err
		}
	}

	return nil
}

// buildOne builds a single component by dispatching on its build type. A
// component without a build step is skipped, not failed: descriptors may
// exist purely to group dependencies or carry test configuration.
func (e *BuildExecutor) buildOne(ctx context.Context, desc *registry.ComponentDescriptor) error {
	if desc.BuildType == builder.TypeUnknown {
		e.logger.Debug(ctx, "Component has no build step configured", "component", desc.ID)
		return nil
	}

	b, err := builder.New(desc.BuildType, desc.ID, desc.Name, desc.BuilderConfig, e.runner, e.logger)
	if err != nil {
		return err
	}

	return b.Build(ctx)
}
