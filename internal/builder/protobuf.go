package builder

import (
	"context"
	"fmt"
	"path/filepath"
)

// ProtobufBuilder executes the Protocol Buffer compiler on all .proto
// files in the configured source directory.
type ProtobufBuilder struct {
	base
	cfg ProtobufConfig
}

// Build compiles every .proto file found under the source path. The first
// failing compiler invocation ends the build; files already generated are
// not cleaned up.
func (b *ProtobufBuilder) Build(ctx context.Context) error {
	b.logger.Info(ctx, "Executing protobuf build",
		"component", b.component, "name", b.name)

	sources, err := filepath.Glob(filepath.Join(b.cfg.SourcePath, "*.proto"))
	if err != nil {
		return err
	}

	if len(sources) == 0 {
		b.logger.Warn(ctx, nil, "No .proto files found",
			"component", b.component, "path", b.cfg.SourcePath)
		return nil
	}

	for _, source := range sources {
		command := fmt.Sprintf("protoc -I=%s --python_out=%s %s",
			b.cfg.SourcePath, b.cfg.TargetPath, source)

		if err := b.runner.Run(ctx, b.cfg.SourcePath, command); err != nil {
			return err
		}
	}

	return nil
}
