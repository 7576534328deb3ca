package commands

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/pluqqy/drumroll/internal/cli"
	"github.com/pluqqy/drumroll/pkg/models"
)

var (
	configValidate bool
)

// NewConfigCommand creates the config command
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the effective settings",
		Long: `Shows the settings drumroll runs with: the settings file merged over
the defaults.

Examples:
  # Show settings as a table
  drumroll config

  # Show settings as YAML, ready to paste into a settings file
  drumroll config -o yaml

  # Check a settings file without starting the picker
  drumroll config --config ./team.yaml --validate`,
		Args: cobra.NoArgs,
		RunE: runConfig,
	}

	cmd.Flags().BoolVar(&configValidate, "validate", false, "Fail when the settings are invalid")

	return cmd
}

func runConfig(cmd *cobra.Command, args []string) error {
	outputFormat, _ := cmd.Flags().GetString("output")
	if err := cli.ValidateOutputFormat(outputFormat); err != nil {
		return err
	}

	ctx := cli.NewCommandContext(rootConfig)
	settings, err := ctx.LoadSettings()
	if err != nil {
		return err
	}

	if err := cli.ValidateSettings(settings); err != nil {
		if configValidate {
			return fmt.Errorf("invalid settings in %s: %w", ctx.SettingsPath, err)
		}
		cli.PrintWarning("invalid settings in %s: %v", ctx.SettingsPath, err)
	}

	return cli.OutputResults(cmd.OutOrStdout(), outputFormat, settings, func(w io.Writer) error {
		return writeSettingsTable(w, settings)
	})
}

func writeSettingsTable(w io.Writer, s *models.Settings) error {
	table := cli.NewTableFormatter(w)
	table.Header("KEY", "VALUE")
	rows := [][2]string{
		{"picker.year_min", strconv.Itoa(s.Picker.YearMin)},
		{"picker.year_max", strconv.Itoa(s.Picker.YearMax)},
		{"picker.visible_items", strconv.Itoa(s.Picker.VisibleItems)},
		{"picker.item_size", strconv.Itoa(s.Picker.ItemSize)},
		{"picker.mouse_step", strconv.Itoa(s.Picker.MouseStep)},
		{"picker.policy", s.Picker.Policy},
		{"picker.snap", strconv.FormatBool(s.Picker.Snap)},
		{"picker.settle_delay_ms", strconv.Itoa(s.Picker.SettleDelayMs)},
		{"picker.frame_ms", strconv.Itoa(s.Picker.FrameMs)},
		{"ui.language", s.UI.Language},
		{"ui.date_format", s.UI.DateFormat},
		{"ui.copy_on_confirm", strconv.FormatBool(s.UI.CopyOnConfirm)},
		{"ui.colors.year", s.UI.Colors.Year},
		{"ui.colors.month", s.UI.Colors.Month},
		{"ui.colors.day", s.UI.Colors.Day},
	}
	for _, row := range rows {
		table.Row(row[0], row[1])
	}
	return table.Flush()
}
