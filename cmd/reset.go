package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bender-renderfarm/bender-config/internal/app"
)

var resetForce bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset the configuration to its default values",
	Args:  cobra.NoArgs,
	RunE:  runReset,
}

func init() {
	resetCmd.Flags().BoolVarP(&resetForce, "force", "f", false, "Reset without asking for confirmation")
	rootCmd.AddCommand(resetCmd)
}

func runReset(cmd *cobra.Command, args []string) error {
	path := configPath()

	if !resetForce {
		fmt.Fprintf(cmd.OutOrStdout(), "Reset configuration at %s to defaults? [y/N] ", path)
		reader := bufio.NewReader(cmd.InOrStdin())
		answer, _ := reader.ReadString('\n')
		answer = strings.ToLower(strings.TrimSpace(answer))
		if answer != "y" && answer != "yes" {
			logInfo("Aborted")
			return nil
		}
	}

	if err := app.Default.Reset(); err != nil {
		return err
	}

	logSuccess("Reset configuration at %s to defaults", path)
	return nil
}
