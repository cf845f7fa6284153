package cmd

import (
	"github.com/spf13/cobra"

	"github.com/bender-renderfarm/bender-config/internal/logging"
	"github.com/bender-renderfarm/bender-config/internal/tui"
)

var wizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Run the interactive configuration wizard",
	Long: `Walk through all configuration sections interactively. The wizard
is prefilled with the current configuration when one exists, otherwise
with the built-in defaults. Nothing is written until the final confirm
step.`,
	Args: cobra.NoArgs,
	RunE: runWizard,
}

func init() {
	rootCmd.AddCommand(wizardCmd)
}

func runWizard(cmd *cobra.Command, args []string) error {
	base, err := loadConfigOrDefault()
	if err != nil {
		return err
	}

	logging.Debug("starting wizard", "path", configPath())

	cfg, err := tui.RunWizard(base)
	if err != nil {
		return err
	}
	if cfg == nil {
		logInfo("Cancelled, nothing written")
		return nil
	}

	if err := saveConfig(cfg); err != nil {
		return err
	}

	logSuccess("Configuration saved to %s", configPath())
	return nil
}
