package lsp

import (
	"errors"
	"unicode/utf16"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/dhamidi/tape/format"
	"github.com/dhamidi/tape/lang"
	"github.com/dhamidi/tape/source"
)

// Diagnose scans and parses a raw document and reports at most one
// error, the same one the run command would stop at. Positions refer to
// the raw text; characters are counted in UTF-16 code units.
func Diagnose(text string) []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}

	cleaned, m := source.CleanMapped(text)
	_, err := lang.Compile(cleaned)
	if err == nil {
		return diagnostics
	}

	var rng protocol.Range
	var symErr *lang.UnrecognizedSymbolError
	var endErr *lang.UnexpectedLoopEndError
	switch {
	case errors.As(err, &symErr):
		rng = runeRange(m.Position(symErr.Index), symErr.Symbol)
	case errors.As(err, &endErr):
		rng = runeRange(m.Position(endErr.Index), ']')
	default:
		rng = protocol.Range{
			Start: protocol.Position{Line: 0, Character: 0},
			End:   toPosition(m.End()),
		}
	}

	severity := protocol.DiagnosticSeverityError
	src := lsName
	diagnostics = append(diagnostics, protocol.Diagnostic{
		Range:    rng,
		Severity: &severity,
		Source:   &src,
		Message:  err.Error(),
	})
	return diagnostics
}

// runeRange covers the single rune r starting at pos.
func runeRange(pos source.Position, r rune) protocol.Range {
	width := utf16.RuneLen(r)
	if width < 1 {
		width = 1
	}
	start := toPosition(pos)
	end := start
	end.Character += protocol.UInteger(width)
	return protocol.Range{Start: start, End: end}
}

func toPosition(pos source.Position) protocol.Position {
	return protocol.Position{
		Line:      protocol.UInteger(pos.Line),
		Character: protocol.UInteger(pos.Character),
	}
}

// formatEdits returns the edit replacing the whole document with its
// canonical layout, or nil when the document does not parse.
func formatEdits(text string) []protocol.TextEdit {
	out, err := format.PrettyPrint([]byte(text))
	if err != nil {
		return nil
	}
	formatted := string(out)
	if formatted == text {
		return nil
	}
	_, m := source.CleanMapped(text)
	return []protocol.TextEdit{{
		Range: protocol.Range{
			Start: protocol.Position{Line: 0, Character: 0},
			End:   toPosition(m.End()),
		},
		NewText: formatted,
	}}
}
