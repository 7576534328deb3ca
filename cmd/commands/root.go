package commands

import (
	"fmt"
	"io"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/pluqqy/drumroll/internal/cli"
	"github.com/pluqqy/drumroll/internal/logging"
	"github.com/pluqqy/drumroll/pkg/datepicker"
	"github.com/pluqqy/drumroll/pkg/models"
	"github.com/pluqqy/drumroll/pkg/tui"
)

var (
	rootConfig     string
	rootLang       string
	rootPolicy     string
	rootYearMin    int
	rootYearMax    int
	rootInitial    string
	rootOpen       bool
	rootPrint      bool
	rootCopy       bool
	rootDebug      bool
	rootLogFile    string
	rootQuiet      bool
	rootNoColor    bool
	rootSkipPrompt bool
)

// NewRootCommand creates the drumroll command with all subcommands attached
func NewRootCommand(version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "drumroll",
		Short: "Pick a date with drum-roll wheels in the terminal",
		Long: `Drumroll opens a terminal date picker made of three scroll wheels for the
year, the month and the day. Scroll a wheel with the keyboard or the mouse;
when it comes to rest, the item in the selection band becomes its value.

Settings are read from .drumroll/settings.yaml in the current directory when
it exists. Flags override the file.

Examples:
  # Pick a date and print it on exit
  drumroll --print

  # Open the picker right away on a given date, in English
  drumroll --open --initial 1999-12-31 --lang en

  # Restrict the year wheel and resolve by threshold
  drumroll --year-min 2000 --year-max 2030 --policy threshold`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cli.SetGlobalFlags(rootQuiet, rootNoColor, rootSkipPrompt)
			cli.SetStreams(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
		RunE: runRoot,
	}

	cmd.PersistentFlags().StringP("output", "o", "text", "Output format (text, json, yaml)")
	cmd.PersistentFlags().StringVar(&rootConfig, "config", "", "Settings file (default .drumroll/settings.yaml)")
	cmd.PersistentFlags().BoolVarP(&rootQuiet, "quiet", "q", false, "Suppress informational output")
	cmd.PersistentFlags().BoolVar(&rootNoColor, "no-color", false, "Plain text status markers")
	cmd.PersistentFlags().BoolVarP(&rootSkipPrompt, "yes", "y", false, "Answer yes to confirmation prompts")

	cmd.Flags().StringVar(&rootLang, "lang", "", "Display language (ja, en)")
	cmd.Flags().StringVar(&rootPolicy, "policy", "", "Resolve policy (center, threshold)")
	cmd.Flags().IntVar(&rootYearMin, "year-min", 0, "First year on the year wheel")
	cmd.Flags().IntVar(&rootYearMax, "year-max", 0, "Last year on the year wheel")
	cmd.Flags().StringVar(&rootInitial, "initial", "", "Date the picker opens on (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&rootOpen, "open", false, "Open the picker on start")
	cmd.Flags().BoolVar(&rootPrint, "print", false, "Print the confirmed date on exit")
	cmd.Flags().BoolVar(&rootCopy, "copy", false, "Copy the confirmed date to the clipboard")
	cmd.Flags().BoolVar(&rootDebug, "debug", false, "Write debug logs to a file")
	cmd.Flags().StringVar(&rootLogFile, "log-file", "", "Debug log file (default in the user cache directory)")

	cmd.AddCommand(NewInitCommand())
	cmd.AddCommand(NewConfigCommand())
	cmd.AddCommand(NewResolveCommand())
	cmd.AddCommand(NewVersionCommand(version))

	return cmd
}

// NewVersionCommand creates the version command
func NewVersionCommand(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of drumroll",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "drumroll version %s\n", version)
		},
	}
}

func runRoot(cmd *cobra.Command, args []string) error {
	closer, err := logging.Setup(rootDebug, rootLogFile)
	if err != nil {
		return err
	}
	if closer != nil {
		defer closer.Close()
	}

	app, err := newRootApp(cmd)
	if err != nil {
		return err
	}

	p := tea.NewProgram(app,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to start the terminal user interface: %w", err)
	}

	return printResult(cmd.OutOrStdout(), app)
}

// newRootApp loads settings, applies flag overrides and builds the TUI
func newRootApp(cmd *cobra.Command) (*tui.App, error) {
	settings, err := cli.NewCommandContext(rootConfig).LoadSettings()
	if err != nil {
		return nil, err
	}
	applyRootOverrides(cmd, settings)

	if err := cli.ValidateSettings(settings); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}

	var initial *datepicker.Date
	if rootInitial != "" {
		d, err := datepicker.ParseDate(rootInitial)
		if err != nil {
			return nil, err
		}
		initial = &d
	}

	slog.Info("starting",
		logging.KeyComponent, logging.CompMain,
		logging.KeyLang, settings.UI.Language,
		logging.KeyPolicy, settings.Picker.Policy,
	)

	return tui.NewApp(tui.AppConfig{
		Settings:    settings,
		Initial:     initial,
		OpenOnStart: rootOpen,
	})
}

func applyRootOverrides(cmd *cobra.Command, s *models.Settings) {
	flags := cmd.Flags()
	if flags.Changed("lang") {
		s.UI.Language = rootLang
	}
	if flags.Changed("policy") {
		s.Picker.Policy = rootPolicy
	}
	if flags.Changed("year-min") {
		s.Picker.YearMin = rootYearMin
	}
	if flags.Changed("year-max") {
		s.Picker.YearMax = rootYearMax
	}
	if rootCopy {
		s.UI.CopyOnConfirm = true
	}
}

func printResult(w io.Writer, app *tui.App) error {
	if !rootPrint {
		return nil
	}
	d, ok := app.Result()
	if !ok {
		return nil
	}
	_, err := fmt.Fprintln(w, d.String())
	return err
}
