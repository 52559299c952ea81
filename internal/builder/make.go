package builder

import "context"

// MakeBuilder executes Make in the component's source directory.
type MakeBuilder struct {
	base
	cfg MakeConfig
}

// Build runs make, optionally with a configured target.
func (b *MakeBuilder) Build(ctx context.Context) error {
	b.logger.Info(ctx, "Executing Make build",
		"component", b.component, "name", b.name)

	command := "make"
	if b.cfg.Target != "" {
		command += " " + b.cfg.Target
	}

	return b.runner.Run(ctx, b.cfg.Path, command)
}
