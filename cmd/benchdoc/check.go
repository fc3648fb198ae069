package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"benchdoc/internal/config"
	"benchdoc/internal/document"
	"benchdoc/internal/ui"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify the document carries the benchmark markers",
	Long: `Checks that the document contains both benchmark markers in order and
prints the table currently embedded between them.`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().Bool("quiet", false, "Only report the marker status")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	quiet, _ := cmd.Flags().GetBool("quiet")
	path := config.Current().Document

	table, err := document.ReadTable(path)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, ui.Success("Markers found in "+path+"."))
	if !quiet {
		fmt.Fprint(out, table)
		if table != "" && table[len(table)-1] != '\n' {
			fmt.Fprintln(out)
		}
	}
	return nil
}
