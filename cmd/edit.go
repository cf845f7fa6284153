package cmd

import (
	"os"
	"os/exec"

	shellquote "github.com/kballard/go-shellquote"
	"github.com/spf13/cobra"

	"github.com/bender-renderfarm/bender-config/internal/config"
	"github.com/bender-renderfarm/bender-config/internal/errors"
)

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the configuration file in $EDITOR",
	Long: `Open the configuration file in the editor named by $EDITOR
(falling back to vi). After the editor exits, the file is re-parsed and
any problem is reported, so a broken edit is caught immediately.`,
	Args: cobra.NoArgs,
	RunE: runEdit,
}

func init() {
	rootCmd.AddCommand(editCmd)
}

func runEdit(cmd *cobra.Command, args []string) error {
	path := configPath()

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return errors.NotFound(path)
		}
		return errors.IO("stat config", err)
	}

	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = "vi"
	}

	// $EDITOR may carry arguments, e.g. "code --wait"
	parts, err := shellquote.Split(editor)
	if err != nil {
		return errors.Wrap(errors.ExitGeneralError, "failed to parse $EDITOR", err)
	}
	parts = append(parts, path)

	editCmd := exec.Command(parts[0], parts[1:]...)
	editCmd.Stdin = os.Stdin
	editCmd.Stdout = os.Stdout
	editCmd.Stderr = os.Stderr
	if err := editCmd.Run(); err != nil {
		return errors.Wrap(errors.ExitGeneralError, "editor exited with an error", err)
	}

	if _, err := config.Load(path); err != nil {
		logError("Configuration at %s is no longer valid: %v", path, err)
		return err
	}

	logSuccess("Configuration at %s is valid", path)
	return nil
}
