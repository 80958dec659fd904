package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dhamidi/tape/format"
	"github.com/dhamidi/tape/source"
)

type fmtOptions struct {
	write bool
}

func newFmtCmd() *cobra.Command {
	var opts fmtOptions

	cmd := &cobra.Command{
		Use:   "fmt [file.bf]",
		Short: "Lay out a program with one line per loop bracket",
		Long: `Print a program in canonical layout: loop brackets on their own
lines, loop bodies indented by two spaces, long runs wrapped.

Without an argument the program is read from stdin. With -w the .bf file
is rewritten in place instead of printed.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFmt(cmd, args, opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.write, "write", "w", false, "rewrite the file in place")

	return cmd
}

func runFmt(cmd *cobra.Command, args []string, opts fmtOptions) error {
	if len(args) == 0 {
		if opts.write {
			return errors.New("-w needs a file argument")
		}
		raw, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		return printFormatted(cmd.OutOrStdout(), raw)
	}

	path := args[0]
	if ext := filepath.Ext(path); ext != source.FileExt {
		return fmt.Errorf("%s: expected a %s file", path, source.FileExt)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}
	if !opts.write {
		return printFormatted(cmd.OutOrStdout(), raw)
	}

	formatted, err := format.PrettyPrint(raw)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return os.WriteFile(path, formatted, 0644)
}

func printFormatted(w io.Writer, raw []byte) error {
	formatted, err := format.PrettyPrint(raw)
	if err != nil {
		return fmt.Errorf("format: %w", err)
	}
	_, err = w.Write(formatted)
	return err
}
