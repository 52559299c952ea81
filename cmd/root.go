// Package cmd provides the command-line interface of the SDE tool. Each
// dispatch mode of the tool is one cobra subcommand; all of them share the
// application context that loads the configuration, sets up logging and
// populates the component registry.
//
// Configuration sources, in precedence order:
//
//	1. The --config flag
//	2. The SDE_CONFIG_FILE environment variable
//	3. ~/.sde/sde.conf, then ./sde.conf
//
// Individual values can be overridden through environment variables with
// the SDE_ prefix (e.g. SDE_LOGGING_LOGLEVEL=DEBUG). When no configuration
// file exists anywhere, a default one is written to ~/.sde/sde.conf.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/suisei-entertainment/sde/internal/config"
	"github.com/suisei-entertainment/sde/internal/errors"
)

var (
	cfgFile   string
	debugMode bool

	// configReadErr carries a configuration locate/read failure from
	// initConfig to the application context, where it surfaces with the
	// real cause instead of a misleading missing-key error.
	configReadErr error
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "sde",
	Short: "SDE command line utility to automate common development tasks",
	Long: `SDE is the development environment tool of the SEED platform. It loads
the set of product components from their descriptor files and dispatches
build, test, lint, coverage and release operations to the matching
external tools.

Quick Start:
  sde build <component>           Build a component and its dependencies
  sde unittest all                Run every configured unit test suite
  sde lint all                    Run the linter for every component
  sde watch <component>           Rebuild a component on file changes

For more information please read the development documentation.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and runs it.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default is ~/.sde/sde.conf, can also use SDE_CONFIG_FILE env var)")
	rootCmd.PersistentFlags().BoolVarP(&debugMode, "debug", "d", false,
		"run the tool in debug mode for additional debug logging")

	bindLogFlags(rootCmd.PersistentFlags())
}

// bindLogFlags wires the logging related flags into viper so they override
// the corresponding configuration values.
func bindLogFlags(flags *pflag.FlagSet) {
	flags.StringP("log-level", "l", "", "log level (DEBUG, INFO, WARNING, ERROR, FATAL)")
	_ = viper.BindPFlag("logging.loglevel", flags.Lookup("log-level"))
}

// initConfig locates and reads the configuration file. A missing file is
// materialized with defaults; an unreadable one is fatal at command
// execution time, when the application context loads.
func initConfig() {
	configReadErr = nil
	viper.SetConfigType("json")

	switch {
	case cfgFile != "":
		viper.SetConfigFile(cfgFile)
	case os.Getenv("SDE_CONFIG_FILE") != "":
		viper.SetConfigFile(os.Getenv("SDE_CONFIG_FILE"))
	default:
		path, err := config.FindConfigFile()
		if err != nil {
			configReadErr = errors.NewConfigError("config_locate",
				fmt.Sprintf("failed to locate the SDE configuration: %v", err))
			return
		}
		viper.SetConfigFile(path)
	}

	viper.SetEnvPrefix("SDE")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		configReadErr = errors.NewConfigError("config_read",
			fmt.Sprintf("failed to read configuration file %s: %v", viper.ConfigFileUsed(), err))
	}
}
