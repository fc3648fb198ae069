package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"benchdoc/internal/benchmark"
	"benchdoc/internal/config"
	"benchdoc/internal/notify"
	"benchdoc/internal/pipeline"
	"benchdoc/internal/telemetry"
	"benchdoc/internal/ui"
)

// Factories allow mocking in tests.
var (
	newRunner = func() benchmark.Runner { return benchmark.NewCargoRunner("") }

	newNotifier = func(s config.Settings) notify.Notifier {
		return notify.New(notify.Config{
			SlackEnabled: s.SlackEnabled,
			SlackChannel: s.SlackChannel,
		}, telemetry.LogInfof)
	}

	confirmWrite = ui.ConfirmWrite
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Run the benchmarks and refresh the document table",
	Long: `Runs 'cargo bench -- --color never', parses the criterion results and
replaces the marked region of the document with a table of mid estimates.
The document is not touched when the benchmarks fail or a marker is missing.`,
	Args: cobra.NoArgs,
	RunE: runUpdate,
}

func init() {
	updateCmd.Flags().Bool("dry-run", false, "Print the table without writing the document")
	updateCmd.Flags().Bool("confirm", false, "Ask before writing the document")
	updateCmd.Flags().Bool("preview", false, "Render the table in the terminal")
	updateCmd.Flags().Bool("no-progress", false, "Disable the progress spinner")
	rootCmd.AddCommand(updateCmd)
}

func runUpdate(cmd *cobra.Command, args []string) error {
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	confirm, _ := cmd.Flags().GetBool("confirm")
	preview, _ := cmd.Flags().GetBool("preview")
	noProgress, _ := cmd.Flags().GetBool("no-progress")

	settings := config.Current()
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Running benchmarks...")

	runner := newRunner()
	if !noProgress && isTerminal(out) {
		runner = &ui.SpinnerRunner{Runner: runner, Title: "cargo bench"}
	}

	p := pipeline.New(runner)
	p.Notifier = newNotifier(settings)

	opts := pipeline.Options{
		Document:       settings.Document,
		PrimaryLibrary: settings.PrimaryLibrary,
		DryRun:         dryRun,
		MetricsFile:    settings.MetricsFile,
	}
	if confirm {
		opts.Confirm = func(table string) (bool, error) {
			if err := printTable(cmd, table, true); err != nil {
				return false, err
			}
			return confirmWrite(settings.Document)
		}
	}

	report, err := p.Run(cmd.Context(), opts)
	if errors.Is(err, pipeline.ErrDeclined) {
		fmt.Fprintln(out, ui.Warn(settings.Document+" left unchanged."))
		return nil
	}
	if err != nil {
		return err
	}

	if report.Layout.Empty() {
		fmt.Fprintln(out, ui.Warn("No benchmark data found."))
	}

	if dryRun || (preview && !confirm) {
		if err := printTable(cmd, report.Table, preview); err != nil {
			return err
		}
	}

	switch {
	case dryRun:
		fmt.Fprintln(out, ui.Muted("Dry run: "+settings.Document+" not written."))
	case report.Changed:
		fmt.Fprintln(out, ui.Success(settings.Document+" updated."))
	default:
		fmt.Fprintln(out, ui.Success(settings.Document+" already up to date."))
	}
	return nil
}

// printTable writes the table as raw markdown, or rendered for the terminal
// when preview is set.
func printTable(cmd *cobra.Command, table string, preview bool) error {
	out := cmd.OutOrStdout()
	if !preview {
		fmt.Fprint(out, table)
		return nil
	}

	rendered, err := ui.Preview(table, 100, ui.PreviewStyle(isTerminal(out)))
	if err != nil {
		return err
	}
	fmt.Fprint(out, rendered)
	return nil
}
