package cmd

import (
	"github.com/spf13/cobra"

	"github.com/suisei-entertainment/sde/internal/executor"
)

var opendocsCmd = &cobra.Command{
	Use:   "opendocs",
	Short: "Open the development documentation",
	Long: `Open the built development documentation in the default browser. The
documentation has to be built first with the documentation component.`,
	Args: cobra.NoArgs,
	RunE: runOpenDocs,
}

func init() {
	rootCmd.AddCommand(opendocsCmd)
}

func runOpenDocs(cmd *cobra.Command, args []string) error {
	app, err := newAppContext(cmd.Context())
	if err != nil {
		return err
	}
	defer app.close()

	return executor.NewOpenDocsExecutor(app.cfg.DocumentationPath, app.runner, app.logger).
		Execute(cmd.Context())
}
