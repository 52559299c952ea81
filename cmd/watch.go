package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/suisei-entertainment/sde/internal/builder"
	"github.com/suisei-entertainment/sde/internal/errors"
	"github.com/suisei-entertainment/sde/internal/executor"
	"github.com/suisei-entertainment/sde/internal/registry"
	"github.com/suisei-entertainment/sde/internal/watcher"
)

var watchDebounce time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch <component>",
	Short: "Rebuild the given component whenever its sources change",
	Long: `Watch the source directory of a component and rebuild it whenever
files under it change. Rapid change bursts are debounced into a single
rebuild. The command blocks until interrupted.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", 300*time.Millisecond,
		"Delay before a burst of file changes triggers a rebuild")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	app, err := newAppContext(cmd.Context())
	if err != nil {
		return err
	}
	defer app.close()

	component, ok := app.registry.Get(args[0])
	if !ok {
		return errors.NewConfigError("component_not_found",
			fmt.Sprintf("component %s was not found in the configuration", args[0]))
	}

	watchPath, err := watchPathFor(component)
	if err != nil {
		return err
	}

	fw, err := watcher.NewFileWatcher(watchDebounce)
	if err != nil {
		return errors.NewIOError("watch_init", "failed to initialize the file watcher", err)
	}

	if err := fw.AddRecursive(watchPath); err != nil {
		return errors.NewIOError("watch_add",
			fmt.Sprintf("failed to watch %s", watchPath), err)
	}

	ctx := cmd.Context()
	buildExec := executor.NewBuildExecutor(app.registry, app.runner, app.logger)

	fw.AddHandler(func(events []watcher.ChangeEvent) error {
		app.logger.Info(ctx, "File changes detected, rebuilding",
			"component", component.ID, "changes", len(events))

		if err := buildExec.Execute(ctx, component.ID); err != nil {
			app.logger.Error(ctx, err, "Rebuild failed", "component", component.ID)
		}
		return nil
	})

	app.logger.Info(ctx, "Watching for changes",
		"component", component.ID, "path", watchPath)

	return fw.Start(ctx)
}

// watchPathFor picks the directory to watch from the component's builder
// configuration. Builders that consume a source tree watch it; everything
// else watches the build path.
func watchPathFor(component *registry.ComponentDescriptor) (string, error) {
	switch cfg := component.BuilderConfig.(type) {
	case builder.CMakeConfig:
		return cfg.Path, nil
	case builder.MakeConfig:
		return cfg.Path, nil
	case builder.ProtobufConfig:
		return cfg.SourcePath, nil
	case builder.SphinxConfig:
		return cfg.SourcePath, nil
	case builder.PythonConfig:
		return cfg.Path, nil
	case builder.DebConfig:
		return cfg.Path, nil
	case builder.DockerConfig:
		return cfg.Path, nil
	case builder.ContentConfig:
		return cfg.SourcePath, nil
	case builder.BashConfig:
		return cfg.Path, nil
	case builder.WheelConfig:
		return cfg.Path, nil
	case builder.PipConfig:
		return cfg.Path, nil
	default:
		return "", errors.NewConfigError("watch_unsupported",
			fmt.Sprintf("component %s has no watchable source directory", component.ID))
	}
}
