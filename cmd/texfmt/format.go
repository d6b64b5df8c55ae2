package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/FedericoStra/texfmt/internal/diag"
	"github.com/FedericoStra/texfmt/internal/diagfmt"
	"github.com/FedericoStra/texfmt/internal/driver"
	"github.com/FedericoStra/texfmt/internal/source"
)

func runFormat(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	output, err := cmd.Flags().GetString("output")
	if err != nil {
		return fmt.Errorf("failed to get output flag: %w", err)
	}

	var res *driver.FormatResult
	if len(args) == 1 && args[0] != "-" {
		res, err = driver.Format(args[0], maxDiagnostics)
		if err != nil {
			return err
		}
	} else {
		content, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("cannot read stdin: %w", err)
		}
		res = driver.FormatBytes("<stdin>", content, maxDiagnostics)
	}

	reportDiagnostics(cmd, res.Bag, res.FileSet)

	if output != "" {
		if err := os.WriteFile(output, res.Output, 0o644); err != nil {
			return fmt.Errorf("cannot write %s: %w", output, err)
		}
	} else {
		if _, err := os.Stdout.Write(res.Output); err != nil {
			return err
		}
	}

	if !res.FullyConsumed() {
		return fmt.Errorf("input not fully tokenized: %d byte(s) left at offset %d",
			len(res.Remainder()), res.Rest)
	}
	return nil
}

// reportDiagnostics pretty-prints the bag to stderr unless --quiet.
func reportDiagnostics(cmd *cobra.Command, bag *diag.Bag, fs *source.FileSet) {
	if bag.Len() == 0 {
		return
	}
	if quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet"); quiet {
		return
	}
	bag.Sort()
	opts := diagfmt.PrettyOpts{
		Color:       useColorFor(colorChoice(cmd), os.Stderr),
		Context:     2,
		ShowNotes:   true,
		ShowPreview: true,
	}
	diagfmt.Pretty(os.Stderr, bag, fs, opts)
}
