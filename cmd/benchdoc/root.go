package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"benchdoc/internal/config"
	"benchdoc/internal/telemetry"
	"benchdoc/internal/ui"
)

var exit = os.Exit
var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "benchdoc",
	Short: "Keep the benchmark table in your README current",
	Long: `benchdoc runs the criterion benchmarks with 'cargo bench', extracts the
reported mid estimates and rewrites the table between the
<!-- BENCHMARK_TABLE_START --> and <!-- BENCHMARK_TABLE_END --> markers
of the target document.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Error(err.Error()))
		exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	cobra.OnFinalize(closeLogger)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./benchdoc.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose/debug logging")
	rootCmd.PersistentFlags().StringP("doc", "d", "", "Document holding the benchmark table (default README.md)")
	rootCmd.PersistentFlags().String("primary", "", "Library shown in the first column (default zabi-rs)")

	viper.BindPFlag(config.KeyVerbose, rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag(config.KeyDocument, rootCmd.PersistentFlags().Lookup("doc"))
	viper.BindPFlag(config.KeyPrimaryLibrary, rootCmd.PersistentFlags().Lookup("primary"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if err := config.Load(cfgFile); err != nil {
		fmt.Fprintln(os.Stderr, ui.Error(err.Error()))
		exit(1)
		return
	}

	// Validate configuration values
	if err := config.ValidateConfig(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Error(err.Error()))
		exit(1)
		return
	}

	telemetry.InitLogger(viper.GetBool(config.KeyVerbose), viper.GetString(config.KeyLogFile))
}

// closeLogger releases the log file opened by initConfig.
func closeLogger() {
	if err := telemetry.CloseLogger(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Error(err.Error()))
	}
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
