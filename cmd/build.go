package cmd

import (
	"github.com/spf13/cobra"

	"github.com/suisei-entertainment/sde/internal/executor"
)

var buildCmd = &cobra.Command{
	Use:   "build <component>",
	Short: "Execute the build script of the given component",
	Long: `Build a component with the external tool declared by its build type.

Declared dependencies are resolved transitively and built first, each
exactly once, in the order the dependency walk discovers them.

Examples:
  sde build seed                  # Build the seed component
  sde build documentation         # Build the development documentation`,
	Args: cobra.ExactArgs(1),
	RunE: runBuild,
}

func init() {
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	app, err := newAppContext(cmd.Context())
	if err != nil {
		return err
	}
	defer app.close()

	return executor.NewBuildExecutor(app.registry, app.runner, app.logger).
		Execute(cmd.Context(), args[0])
}
