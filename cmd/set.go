package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/bender-renderfarm/bender-config/internal/config"
)

var setCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a value in the configuration file",
	Long: `Set a single value in the configuration file by its dotted key.
The value is validated against the field's domain before anything is
written; an invalid value leaves the file untouched.

Known keys:
  ` + strings.Join(config.Keys(), "\n  "),
	Args: cobra.ExactArgs(2),
	RunE: runSet,
}

func init() {
	rootCmd.AddCommand(setCmd)
}

func runSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if err := cfg.Set(key, value); err != nil {
		return err
	}

	if err := saveConfig(cfg); err != nil {
		return err
	}

	logSuccess("Set %s = %s", key, value)
	return nil
}
