package cmd

import (
	"github.com/spf13/cobra"

	"github.com/suisei-entertainment/sde/internal/executor"
)

var unittestCmd = &cobra.Command{
	Use:   "unittest <component|all>",
	Short: "Execute the unit tests of the given component",
	Long: `Run the unit test suite of a component, or of every configured
component when "all" is given.

Every selected suite is executed even if an earlier one fails; the
command exits nonzero when any suite reported a failure or an error.`,
	Args: cobra.ExactArgs(1),
	RunE: runUnitTest,
}

func init() {
	rootCmd.AddCommand(unittestCmd)
}

func runUnitTest(cmd *cobra.Command, args []string) error {
	app, err := newAppContext(cmd.Context())
	if err != nil {
		return err
	}
	defer app.close()

	return executor.NewUnitTestExecutor(app.registry, app.runner, app.logger).
		Execute(cmd.Context(), args[0])
}
