package cmd

import (
	"github.com/spf13/cobra"

	"github.com/suisei-entertainment/sde/internal/executor"
)

var coverageCmd = &cobra.Command{
	Use:   "coverage",
	Short: "Execute the coverage test",
	Long: `Run every configured unit test suite under the coverage tool, then
produce a console report and an HTML report.`,
	Args: cobra.NoArgs,
	RunE: runCoverage,
}

func init() {
	rootCmd.AddCommand(coverageCmd)
}

func runCoverage(cmd *cobra.Command, args []string) error {
	app, err := newAppContext(cmd.Context())
	if err != nil {
		return err
	}
	defer app.close()

	return executor.NewCoverageExecutor(app.registry, app.runner, app.logger).
		Execute(cmd.Context())
}
