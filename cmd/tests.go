package cmd

import (
	"github.com/spf13/cobra"

	"github.com/suisei-entertainment/sde/internal/executor"
)

var featureTestCmd = &cobra.Command{
	Use:   "featuretest <component|all>",
	Short: "Execute the feature tests of the given component",
	Args:  cobra.ExactArgs(1),
	RunE:  makeStubRunner("featuretest"),
}

var systemTestCmd = &cobra.Command{
	Use:   "systemtest <component|all>",
	Short: "Execute the system tests of the given component",
	Args:  cobra.ExactArgs(1),
	RunE:  makeStubRunner("systemtest"),
}

var perfTestCmd = &cobra.Command{
	Use:   "perftest <component|all>",
	Short: "Execute the performance tests of the given component",
	Args:  cobra.ExactArgs(1),
	RunE:  makeStubRunner("performancetest"),
}

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install the development environment",
	Args:  cobra.NoArgs,
	RunE:  makeStubRunner("install"),
}

var releaseCmd = &cobra.Command{
	Use:   "release <version>",
	Short: "Execute the release script for the given version",
	Args:  cobra.ExactArgs(1),
	RunE:  makeStubRunner("release"),
}

func init() {
	rootCmd.AddCommand(featureTestCmd)
	rootCmd.AddCommand(systemTestCmd)
	rootCmd.AddCommand(perfTestCmd)
	rootCmd.AddCommand(installCmd)
	rootCmd.AddCommand(releaseCmd)
}

// makeStubRunner builds a RunE handler for the modes that only exist as a
// placeholder on the command line surface.
func makeStubRunner(mode string) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		app, err := newAppContext(cmd.Context())
		if err != nil {
			return err
		}
		defer app.close()

		component := ""
		if len(args) == 1 {
			component = args[0]
		}

		return executor.NewStubExecutor(mode, app.logger).
			Execute(cmd.Context(), component)
	}
}
