package builder

import "context"

// CMakeBuilder executes CMake in the component's source directory.
type CMakeBuilder struct {
	base
	cfg CMakeConfig
}

// Build runs the CMake generator.
func (b *CMakeBuilder) Build(ctx context.Context) error {
	b.logger.Info(ctx, "Executing CMake build",
		"component", b.component, "name", b.name)

	return b.runner.Run(ctx, b.cfg.Path, `cmake -G "Unix Makefiles" .`)
}
