package builder

import (
	"context"
	"fmt"
)

// SphinxBuilder executes the Sphinx documentation builder in the
// configured source directory.
type SphinxBuilder struct {
	base
	cfg SphinxConfig
}

// Build runs sphinx-build with the configured target and paths.
func (b *SphinxBuilder) Build(ctx context.Context) error {
	b.logger.Info(ctx, "Executing documentation build",
		"component", b.component, "name", b.name)

	command := fmt.Sprintf("sphinx-build -b %s %q %q",
		b.cfg.Target, b.cfg.SourcePath, b.cfg.TargetPath)

	return b.runner.Run(ctx, b.cfg.SourcePath, command)
}
