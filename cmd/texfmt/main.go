package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/FedericoStra/texfmt/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "texfmt [flags] [input]",
	Short: "(La)TeX source formatter",
	Long: `texfmt tokenizes (La)TeX sources into a lossless token stream.
Formatting on top of that stream is work in progress, so the output is
currently the input, re-emitted unchanged from the tokens.

With no input argument (or "-"), texfmt reads from standard input.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFormat,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(versionCmd)

	// global flags
	rootCmd.PersistentFlags().String("color", "", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to show")
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		configureColor(cmd)
	}

	rootCmd.Flags().StringP("output", "o", "", "write output to a file instead of stdout")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// colorChoice resolves the color preference: explicit flag, then
// texfmt.toml, then "auto".
func colorChoice(cmd *cobra.Command) string {
	choice, _ := cmd.Root().PersistentFlags().GetString("color")
	if choice == "" {
		if cfg, ok, err := loadWorkingConfig(); err == nil && ok {
			choice = cfg.Format.Color
		}
	}
	if choice == "" {
		return "auto"
	}
	return choice
}

// useColorFor reports whether the resolved choice enables color on f.
func useColorFor(choice string, f *os.File) bool {
	switch choice {
	case "on":
		return true
	case "off":
		return false
	default:
		return isTerminal(f)
	}
}

// configureColor flips the process-wide color switch from the stdout
// preference. Per-stream decisions (stderr diagnostics) go through
// useColorFor instead.
func configureColor(cmd *cobra.Command) {
	color.NoColor = !useColorFor(colorChoice(cmd), os.Stdout)
}
