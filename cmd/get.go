package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bender-renderfarm/bender-config/internal/config"
)

var getCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a value from the configuration file",
	Long: `Get a single value from the configuration file by its dotted key,
e.g. "server.host" or "limits.max_workers".

Known keys:
  ` + strings.Join(config.Keys(), "\n  "),
	Args: cobra.ExactArgs(1),
	RunE: runGet,
}

func init() {
	rootCmd.AddCommand(getCmd)
}

func runGet(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	value, err := cfg.Get(args[0])
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), value)
	return nil
}
