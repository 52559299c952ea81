package builder

import (
	"context"
	"os"
	"path/filepath"
)

// ContentBuilder moves files from one location to another without invoking
// any external tool.
type ContentBuilder struct {
	base
	cfg ContentConfig
}

// Build copies the source tree into the target location.
func (b *ContentBuilder) Build(ctx context.Context) error {
	b.logger.Info(ctx, "Executing content build",
		"component", b.component, "name", b.name)

	return copyDir(b.cfg.SourcePath, b.cfg.TargetPath)
}

func copyDir(src, dest string) error {
	if err := os.MkdirAll(dest, 0755); err != nil {
		return err
	}

	return filepath.Walk(src, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		relPath, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}

		destPath := filepath.Join(dest, relPath)

		if info.IsDir() {
			return os.MkdirAll(destPath, info.Mode())
		}

		return copyFile(path, destPath)
	})
}

func copyFile(src, dest string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}

	return os.WriteFile(dest, data, 0644)
}
