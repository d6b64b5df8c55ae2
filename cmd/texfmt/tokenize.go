package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/FedericoStra/texfmt/internal/diagfmt"
	"github.com/FedericoStra/texfmt/internal/driver"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] [file.tex|dir]",
	Short: "Tokenize a (La)TeX source",
	Long: `Tokenize breaks a (La)TeX source into its constituent tokens.
A directory argument tokenizes every *.tex file under it in parallel;
with no argument the source is read from standard input.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "", "output format (pretty|json|msgpack)")
	tokenizeCmd.Flags().Int("jobs", 0, "parallel workers for directory input (0 = GOMAXPROCS)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if format == "" {
		if cfg, ok, err := loadWorkingConfig(); err == nil && ok {
			format = cfg.Tokenize.Format
		}
	}
	if format == "" {
		format = "pretty"
	}
	switch format {
	case "pretty", "json", "msgpack":
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	if len(args) == 1 {
		if info, err := os.Stat(args[0]); err == nil && info.IsDir() {
			return runTokenizeDir(cmd, args[0], format, maxDiagnostics)
		}
	}

	var result *driver.TokenizeResult
	if len(args) == 1 && args[0] != "-" {
		result, err = driver.Tokenize(args[0], maxDiagnostics)
		if err != nil {
			return err
		}
	} else {
		content, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("cannot read stdin: %w", err)
		}
		result = driver.TokenizeBytes("<stdin>", content, maxDiagnostics)
	}

	reportDiagnostics(cmd, result.Bag, result.FileSet)

	switch format {
	case "pretty":
		err = diagfmt.FormatTokensPretty(os.Stdout, result.Tokens, result.FileSet)
	case "json":
		err = diagfmt.FormatTokensJSON(os.Stdout, result.Tokens)
	case "msgpack":
		err = diagfmt.FormatTokensMsgpack(os.Stdout, result.Tokens, result.File)
	}
	if err != nil {
		return err
	}

	if !result.FullyConsumed() {
		return fmt.Errorf("input not fully tokenized: %d byte(s) left at offset %d",
			len(result.Remainder()), result.Rest)
	}
	return nil
}

// runTokenizeDir tokenizes every *.tex file under dir in parallel and
// prints a per-file summary. Structured formats are single-file only.
func runTokenizeDir(cmd *cobra.Command, dir, format string, maxDiagnostics int) error {
	if format != "pretty" {
		return fmt.Errorf("format %s is not supported for directories", format)
	}

	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	if jobs == 0 {
		if cfg, ok, err := loadWorkingConfig(); err == nil && ok {
			jobs = cfg.Tokenize.Jobs
		}
	}

	fileSet, results, err := driver.TokenizeDir(context.Background(), dir, maxDiagnostics, jobs)
	if err != nil {
		return err
	}

	failed := 0
	for _, res := range results {
		fmt.Fprintf(os.Stdout, "%s: %d tokens\n", res.Path, len(res.Tokens))
		reportDiagnostics(cmd, res.Bag, fileSet)
		if res.Bag.HasErrors() {
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d file(s) failed to tokenize", failed, len(results))
	}
	return nil
}
