package builder

import (
	"context"
	"fmt"
)

// ArtifactoryBuilder retrieves a prebuilt dependency from Artifactory
// instead of building it locally.
type ArtifactoryBuilder struct {
	base
	cfg ArtifactoryConfig
}

// Build downloads the configured target through the JFrog CLI.
func (b *ArtifactoryBuilder) Build(ctx context.Context) error {
	b.logger.Info(ctx, "Retrieving component from Artifactory",
		"component", b.component, "name", b.name)

	return b.runner.Run(ctx, ".", fmt.Sprintf("jfrog rt download %s", b.cfg.Target))
}

// PythonBuilder executes a PyInstaller based Python build.
type PythonBuilder struct {
	base
	cfg PythonConfig
}

// Build runs PyInstaller on the configured spec file.
func (b *PythonBuilder) Build(ctx context.Context) error {
	b.logger.Info(ctx, "Executing Python build",
		"component", b.component, "name", b.name)

	return b.runner.Run(ctx, b.cfg.Path, fmt.Sprintf("pyinstaller --clean %s", b.cfg.Target))
}

// DebBuilder builds a Debian package from the component directory.
type DebBuilder struct {
	base
	cfg DebConfig
}

// Build runs dpkg-deb on the package directory.
func (b *DebBuilder) Build(ctx context.Context) error {
	b.logger.Info(ctx, "Executing deb build",
		"component", b.component, "name", b.name)

	return b.runner.Run(ctx, b.cfg.Path, "dpkg-deb --build .")
}

// DockerBuilder builds a Docker image from the component's Dockerfile.
type DockerBuilder struct {
	base
	cfg DockerConfig
}

// Build runs docker build, tagging the image with the component ID.
func (b *DockerBuilder) Build(ctx context.Context) error {
	b.logger.Info(ctx, "Executing Docker build",
		"component", b.component, "name", b.name)

	return b.runner.Run(ctx, b.cfg.Path, fmt.Sprintf("docker build -t %s .", b.component))
}

// BashBuilder executes a bash build script.
type BashBuilder struct {
	base
	cfg BashConfig
}

// Build runs the configured script.
func (b *BashBuilder) Build(ctx context.Context) error {
	b.logger.Info(ctx, "Executing bash build",
		"component", b.component, "name", b.name)

	return b.runner.Run(ctx, b.cfg.Path, fmt.Sprintf("bash %s", b.cfg.Script))
}

// WheelBuilder creates a Python wheel from the component directory.
type WheelBuilder struct {
	base
	cfg WheelConfig
}

// Build runs the wheel build.
func (b *WheelBuilder) Build(ctx context.Context) error {
	b.logger.Info(ctx, "Executing wheel build",
		"component", b.component, "name", b.name)

	return b.runner.Run(ctx, b.cfg.Path, "python3 -m build --wheel")
}

// PipBuilder installs the component as a Python package through pip.
type PipBuilder struct {
	base
	cfg PipConfig
}

// Build runs the pip installation.
func (b *PipBuilder) Build(ctx context.Context) error {
	b.logger.Info(ctx, "Executing pip installation",
		"component", b.component, "name", b.name)

	return b.runner.Run(ctx, b.cfg.Path, "pip install --upgrade .")
}
