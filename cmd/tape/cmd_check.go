package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dhamidi/tape/lang"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <file.bf|code>...",
		Short: "Scan and parse programs without running them",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args)
		},
	}
}

func runCheck(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	failed := 0
	for _, arg := range args {
		name, program, err := loadProgram(arg)
		if name == "" {
			name = arg
		}
		if err != nil {
			failed++
			fmt.Fprintf(out, "[ERROR] %s: %v\n", name, err)
			continue
		}
		fmt.Fprintf(out, "[OK] %s (%d instructions)\n", name, lang.Count(program))
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d programs failed", failed, len(args))
	}
	return nil
}
