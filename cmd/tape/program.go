package main

import (
	"fmt"

	"github.com/dhamidi/tape/lang"
	"github.com/dhamidi/tape/source"
)

// loadProgram resolves a file or inline argument and compiles it. Errors
// are prefixed with the stage that produced them.
func loadProgram(arg string) (string, []lang.Instruction, error) {
	name, raw, err := source.Load(arg)
	if err != nil {
		return "", nil, err
	}

	symbols, err := lang.Scan(source.Clean(raw))
	if err != nil {
		return name, nil, fmt.Errorf("tokenize: %w", err)
	}

	tree, err := lang.Parse(symbols)
	if err != nil {
		return name, nil, fmt.Errorf("parse: %w", err)
	}
	return name, tree, nil
}
