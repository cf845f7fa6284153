package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/bender-renderfarm/bender-config/internal/config"
	"github.com/bender-renderfarm/bender-config/internal/errors"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default configuration file",
	Long: `Create a configuration file populated with the built-in defaults
at the resolved location. Fails if a file already exists unless --force
is given.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite an existing configuration file")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	path := configPath()

	if !initForce {
		if _, err := os.Stat(path); err == nil {
			return errors.New(errors.ExitIOError, "configuration file already exists at "+path+" (use --force to overwrite)")
		}
	}

	cfg := config.Default()
	cfg.Paths.Config = path

	if err := saveConfig(cfg); err != nil {
		return err
	}

	logSuccess("Created default configuration at %s", path)
	return nil
}
