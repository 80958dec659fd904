package lang

import (
	"errors"
	"fmt"
)

// ErrEndOfInput is returned by Scanner.Next once every character has been
// scanned.
var ErrEndOfInput = errors.New("end of input")

// UnrecognizedSymbolError is returned by the scanner for the first
// character outside the symbol set. Index counts runes in the cleaned
// source.
type UnrecognizedSymbolError struct {
	Symbol rune
	Index  int
}

func (e *UnrecognizedSymbolError) Error() string {
	return fmt.Sprintf("unrecognized symbol %q at index %d", e.Symbol, e.Index)
}

// UnmatchedBracketsError reports a global mismatch between the number of
// loop starts and loop ends. It does not say which bracket is unmatched.
type UnmatchedBracketsError struct {
	Opens  int
	Closes int
}

func (e *UnmatchedBracketsError) Error() string {
	return fmt.Sprintf("unmatched brackets: %d opening and %d closing", e.Opens, e.Closes)
}

// UnexpectedLoopEndError reports a loop end with no open loop before it.
// Counts are balanced when this is returned.
type UnexpectedLoopEndError struct {
	Index int
}

func (e *UnexpectedLoopEndError) Error() string {
	return fmt.Sprintf("unexpected loop end at index %d", e.Index)
}
