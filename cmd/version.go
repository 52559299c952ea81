package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/suisei-entertainment/sde/internal/config"
	"github.com/suisei-entertainment/sde/internal/version"
)

var versionDetailed bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display version information",
	Long: `Display the configured product version and the version of the sde
binary itself.`,
	Args: cobra.NoArgs,
	RunE: runVersion,
}

func init() {
	versionCmd.Flags().BoolVar(&versionDetailed, "detailed", false, "Show detailed build information")
	rootCmd.AddCommand(versionCmd)
}

func runVersion(cmd *cobra.Command, args []string) error {
	// The product version lives in the configuration file; show it when the
	// configuration loads, and fall back to the binary's version otherwise.
	if configReadErr == nil {
		if cfg, err := config.Load(); err == nil {
			fmt.Fprintf(cmd.OutOrStdout(), "SDE version: %s\n", cfg.Version.String())
		}
	}

	if versionDetailed {
		fmt.Fprintln(cmd.OutOrStdout(), version.GetDetailedVersion())
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "sde %s\n", version.GetShortVersion())
	return nil
}
