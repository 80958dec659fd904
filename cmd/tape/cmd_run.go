package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	"github.com/dhamidi/tape/interp"
)

func newRunCmd(opts *globalOptions) *cobra.Command {
	var prompt string
	var cellBits uint

	cmd := &cobra.Command{
		Use:   "run <file.bf|code>",
		Short: "Run a program",
		Long: `Run a program from a .bf file or from inline code.

An argument ending in .bf is read from disk; anything else is treated as
the program itself. Spaces, tabs and line breaks are ignored.

The input instruction prompts on stdout and reads one integer per line
from stdin, asking again until the line parses. Press Ctrl-C to stop a
program that does not terminate.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := *opts.config
			if cmd.Flags().Changed("prompt") {
				cfg.Prompt = prompt
			}
			if cmd.Flags().Changed("cell-bits") {
				cfg.CellBits = cellBits
				if err := cfg.Validate(); err != nil {
					return err
				}
			}
			return runRun(cmd, args[0], cfg.Prompt, cfg.CellBits)
		},
	}

	cmd.Flags().StringVar(&prompt, "prompt", interp.DefaultPrompt, "text shown before reading input")
	cmd.Flags().UintVar(&cellBits, "cell-bits", 0, "wrap cells modulo 2^n (8, 16, 32 or 64; 0 for unbounded)")

	return cmd
}

func runRun(cmd *cobra.Command, arg, prompt string, cellBits uint) error {
	_, program, err := loadProgram(arg)
	if err != nil {
		return err
	}

	console := interp.NewConsole(os.Stdin, os.Stdout)
	atexit.Register(func() {
		console.Flush()
	})

	// The first Ctrl-C cancels the run; stop restores the default handler
	// so a second one kills the process.
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()
	context.AfterFunc(ctx, stop)

	evaluator := interp.New(
		interp.WithConsole(console),
		interp.WithPrompt(prompt),
		interp.WithCellBits(cellBits),
	)
	if err := evaluator.Run(ctx, program); err != nil {
		return fmt.Errorf("execute: %w", err)
	}
	return nil
}
