// Package source turns command-line arguments and documents into the
// cleaned text the scanner expects.
package source

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf16"
)

// FileExt marks an argument as a path to a program file rather than
// inline code.
const FileExt = ".bf"

var stripped = strings.NewReplacer("\n", "", "\r", "", "\t", "", " ", "")

// Clean removes newlines, carriage returns, tabs and spaces. Every other
// character is kept so the scanner can reject it.
func Clean(raw string) string {
	return stripped.Replace(raw)
}

func isStripped(r rune) bool {
	return r == '\n' || r == '\r' || r == '\t' || r == ' '
}

// Map records where each rune of a cleaned string came from in the raw
// text, so scanner and parser indexes can be reported against the
// original document.
type Map struct {
	offsets []Position
	end     Position
}

// Position is a zero-based location in raw text. Column counts runes;
// Character counts UTF-16 code units, as editors speaking LSP expect.
type Position struct {
	Offset    int
	Line      int
	Column    int
	Character int
}

// CleanMapped is Clean plus the position of every kept rune.
func CleanMapped(raw string) (string, *Map) {
	var b strings.Builder
	m := &Map{}
	line, col, char := 0, 0, 0
	for offset, r := range raw {
		if !isStripped(r) {
			b.WriteRune(r)
			m.offsets = append(m.offsets, Position{Offset: offset, Line: line, Column: col, Character: char})
		}
		if r == '\n' {
			line++
			col, char = 0, 0
			continue
		}
		col++
		char += utf16Len(r)
	}
	m.end = Position{Offset: len(raw), Line: line, Column: col, Character: char}
	return b.String(), m
}

// utf16Len is the UTF-16 width of r. Invalid runes decode as U+FFFD,
// which is one unit wide.
func utf16Len(r rune) int {
	if n := utf16.RuneLen(r); n > 0 {
		return n
	}
	return 1
}

// Position returns the raw position of the rune at index in the cleaned
// text. Indexes at or past the end map to the end of the raw text.
func (m *Map) Position(index int) Position {
	if index < 0 {
		index = 0
	}
	if index >= len(m.offsets) {
		return m.end
	}
	return m.offsets[index]
}

// End returns the position just past the raw text.
func (m *Map) End() Position {
	return m.end
}

// Load resolves a command-line argument. Arguments ending in FileExt are
// read from disk; anything else is the program text itself. The returned
// name is the path, or "<inline>".
func Load(arg string) (name, raw string, err error) {
	if strings.HasSuffix(arg, FileExt) {
		data, err := os.ReadFile(arg)
		if err != nil {
			return "", "", fmt.Errorf("read file %q: %w", arg, err)
		}
		return arg, string(data), nil
	}
	return "<inline>", arg, nil
}
