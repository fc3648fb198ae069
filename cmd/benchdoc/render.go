package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"benchdoc/internal/config"
	"benchdoc/internal/pipeline"
)

var renderCmd = &cobra.Command{
	Use:   "render [file]",
	Short: "Build the table from saved benchmark output",
	Long: `Parses criterion output from a file (or stdin when no file or "-" is given)
and prints the table that 'update' would write. Nothing is executed and no
document is modified.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRender,
}

func init() {
	renderCmd.Flags().Bool("preview", false, "Render the table in the terminal")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	preview, _ := cmd.Flags().GetBool("preview")

	var in io.Reader = cmd.InOrStdin()
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open benchmark output: %w", err)
		}
		defer f.Close()
		in = f
	}

	report, err := pipeline.New(nil).Render(in, config.Current().PrimaryLibrary)
	if err != nil {
		return err
	}

	return printTable(cmd, report.Table, preview)
}
