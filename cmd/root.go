package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/bender-renderfarm/bender-config/internal/app"
	"github.com/bender-renderfarm/bender-config/internal/config"
	"github.com/bender-renderfarm/bender-config/internal/logging"
)

var (
	cfgFile    string
	verbose    bool
	jsonOutput bool
)

var rootCmd = &cobra.Command{
	Use:   "bender-config",
	Short: "Configuration CLI for the bender render farm",
	Long: `bender-config reads, writes and creates the configuration shared
by bender render clients and servers.

The configuration is a single TOML file (default: /etc/bender/config.toml)
that survives repeated load/save cycles without drift: serialization is
deterministic and loading a saved file reproduces the saved values exactly.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Setup(verbose, jsonOutput, os.Stderr)
		app.SetDefault(app.New(app.WithConfigPath(config.ResolvePath(cfgFile))))
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Path to the configuration file (default /etc/bender/config.toml, or $BENDER_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output logs in JSON format")
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

// Helper aliases for user-facing output (delegates to logging package)
var (
	logInfo    = logging.UserInfo
	logSuccess = logging.UserSuccess
	logError   = logging.UserError
	_          = logging.UserWarning // reserved for future use
)
