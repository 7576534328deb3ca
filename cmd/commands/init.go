package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pluqqy/drumroll/internal/cli"
	"github.com/pluqqy/drumroll/pkg/files"
	"github.com/pluqqy/drumroll/pkg/models"
)

var (
	initForce bool
)

// NewInitCommand creates the init command
func NewInitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a settings file with the defaults",
		Long: `Creates .drumroll/settings.yaml in the current directory with every
setting at its default value, ready to be edited.

An existing settings file is only replaced after confirmation, or with --force.

Examples:
  # Create the settings file
  drumroll init

  # Reset an existing settings file
  drumroll init --force`,
		Args: cobra.NoArgs,
		RunE: runInit,
	}

	cmd.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite an existing settings file")

	return cmd
}

func runInit(cmd *cobra.Command, args []string) error {
	path := files.SettingsPath()

	if _, err := os.Stat(path); err == nil && !initForce {
		ok, err := cli.Confirm(fmt.Sprintf("%s already exists. Overwrite it?", path), false)
		if err != nil {
			return fmt.Errorf("failed to read confirmation: %w", err)
		}
		if !ok {
			cli.PrintInfo("Kept existing settings in %s", path)
			return nil
		}
	}

	if err := files.InitProjectStructure(); err != nil {
		return fmt.Errorf("failed to initialize project structure: %w", err)
	}
	if err := files.WriteSettingsTo(path, models.DefaultSettings()); err != nil {
		return err
	}

	cli.PrintSuccess("Created %s", path)
	cli.PrintInfo("Run 'drumroll' to start the picker")
	return nil
}
