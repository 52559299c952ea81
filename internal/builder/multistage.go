package builder

import "context"

// MultistageBuilder runs a sequence of build stages, each backed by one of
// the other builders. Stages run in declaration order; the first failing
// stage ends the build and earlier stages are not rolled back.
type MultistageBuilder struct {
	base
	cfg MultistageConfig
}

// Build runs every configured stage in order.
func (b *MultistageBuilder) Build(ctx context.Context) error {
	b.logger.Info(ctx, "Executing multistage build",
		"component", b.component, "name", b.name, "stages", len(b.cfg.Stages))

	for i, stage := range b.cfg.Stages {
		b.logger.Debug(ctx, "Executing build stage",
			"component", b.component, "stage", i, "type", stage.BuildType.String())

		stageBuilder, err := New(stage.BuildType, b.component, b.name, stage.Config, b.runner, b.logger)
		if err != nil {
			return err
		}

		if err := stageBuilder.Build(ctx); err != nil {
			return err
		}
	}

	return nil
}
