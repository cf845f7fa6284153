package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bender-renderfarm/bender-config/internal/config"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the configuration file",
	Args:  cobra.NoArgs,
	RunE:  runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	out, err := config.Encode(cfg)
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}
