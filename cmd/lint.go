package cmd

import (
	"github.com/spf13/cobra"

	"github.com/suisei-entertainment/sde/internal/executor"
)

var lintCmd = &cobra.Command{
	Use:   "lint [component|all]",
	Short: "Execute the linter",
	Long: `Run the linter in the linter directory of a component, or of every
configured component when "all" is given or the component is omitted.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLint,
}

func init() {
	rootCmd.AddCommand(lintCmd)
}

func runLint(cmd *cobra.Command, args []string) error {
	app, err := newAppContext(cmd.Context())
	if err != nil {
		return err
	}
	defer app.close()

	component := executor.AllComponents
	if len(args) == 1 {
		component = args[0]
	}

	return executor.NewLinterExecutor(app.registry, app.runner, app.logger).
		Execute(cmd.Context(), component)
}
