package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/bender-renderfarm/bender-config/internal/config"
	"github.com/bender-renderfarm/bender-config/internal/tui"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage named configuration profiles",
	Long: `Profiles are named configuration presets stored as TOML files next
to the configuration file (in the "profiles" directory). Running
"profile" without a subcommand opens an interactive picker.`,
	Args: cobra.NoArgs,
	RunE: runProfilePicker,
}

var profileListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored profiles",
	Args:  cobra.NoArgs,
	RunE:  runProfileList,
}

var profileShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Print a stored profile",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfileShow,
}

var profileSaveCmd = &cobra.Command{
	Use:   "save <name>",
	Short: "Store the current configuration as a profile",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfileSave,
}

var profileApplyCmd = &cobra.Command{
	Use:   "apply <name>",
	Short: "Replace the current configuration with a profile",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfileApply,
}

var profileDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a stored profile",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfileDelete,
}

func init() {
	profileCmd.AddCommand(profileListCmd)
	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileSaveCmd)
	profileCmd.AddCommand(profileApplyCmd)
	profileCmd.AddCommand(profileDeleteCmd)
	rootCmd.AddCommand(profileCmd)
}

func runProfilePicker(cmd *cobra.Command, args []string) error {
	infos, err := tui.LoadProfileInfos(profilesDir())
	if err != nil {
		return err
	}
	if len(infos) == 0 {
		logInfo("No profiles found. Store one with: bender-config profile save <name>")
		return nil
	}

	result, err := tui.RunPicker(infos)
	if err != nil {
		return err
	}

	switch result.Action {
	case tui.ActionApply:
		return applyProfile(result.Profile)
	case tui.ActionShow:
		return showProfile(cmd, result.Profile)
	case tui.ActionDelete:
		return deleteProfile(result.Profile)
	}
	return nil
}

func runProfileList(cmd *cobra.Command, args []string) error {
	dir := profilesDir()

	names, err := config.ListProfiles(dir)
	if err != nil {
		return err
	}

	if len(names) == 0 {
		logInfo("No profiles found in %s", dir)
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PROFILE\tSERVER\tMAX WORKERS")
	fmt.Fprintln(w, "-------\t------\t-----------")

	for _, name := range names {
		cfg, err := config.LoadProfile(dir, name)
		if err != nil {
			fmt.Fprintf(w, "%s\t%s\t%s\n", name, "-", "-")
			continue
		}
		fmt.Fprintf(w, "%s\t%s\t%d\n", name, cfg.Server.Addr(), cfg.Limits.MaxWorkers)
	}

	return w.Flush()
}

func runProfileShow(cmd *cobra.Command, args []string) error {
	return showProfile(cmd, args[0])
}

func runProfileSave(cmd *cobra.Command, args []string) error {
	name := args[0]

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if err := config.SaveProfile(profilesDir(), name, cfg); err != nil {
		return err
	}

	logSuccess("Saved current configuration as profile %q", name)
	return nil
}

func runProfileApply(cmd *cobra.Command, args []string) error {
	return applyProfile(args[0])
}

func runProfileDelete(cmd *cobra.Command, args []string) error {
	return deleteProfile(args[0])
}

func showProfile(cmd *cobra.Command, name string) error {
	cfg, err := config.LoadProfile(profilesDir(), name)
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

func applyProfile(name string) error {
	cfg, err := config.LoadProfile(profilesDir(), name)
	if err != nil {
		return err
	}

	if err := saveConfig(cfg); err != nil {
		return err
	}

	logSuccess("Applied profile %q to %s", name, configPath())
	return nil
}

func deleteProfile(name string) error {
	if err := config.DeleteProfile(profilesDir(), name); err != nil {
		return err
	}

	logSuccess("Deleted profile %q", name)
	return nil
}
