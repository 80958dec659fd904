package format

import (
	"bytes"
	"io"
	"strings"

	"github.com/dhamidi/tape/lang"
	"github.com/dhamidi/tape/source"
)

// SourceEncoder prints a tree as program text. Every loop bracket sits on
// its own line and loop bodies are indented one level per nesting depth.
// Runs of other instructions are wrapped at maxColumn.
type SourceEncoder struct {
	w           io.Writer
	tree        []lang.Instruction
	buf         *bytes.Buffer
	indent      int
	indentStr   string
	atLineStart bool
	column      int
	maxColumn   int
}

func NewSourceEncoder(w io.Writer) *SourceEncoder {
	return &SourceEncoder{
		w:           w,
		indentStr:   "  ",
		atLineStart: true,
		maxColumn:   72,
	}
}

func (e *SourceEncoder) Encode(tree []lang.Instruction) error {
	e.tree = tree
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *SourceEncoder) MarshalText() ([]byte, error) {
	e.buf = &bytes.Buffer{}
	e.indent = 0
	e.atLineStart = true
	e.column = 0
	e.printBlock(e.tree)
	if !e.atLineStart {
		e.newline()
	}
	return e.buf.Bytes(), nil
}

func (e *SourceEncoder) printBlock(block []lang.Instruction) {
	for _, in := range block {
		if in.Kind != lang.KindLoop {
			e.writeRun(lang.SymbolString(lang.Flatten([]lang.Instruction{in})))
			continue
		}
		if !e.atLineStart {
			e.newline()
		}
		e.writeIndent()
		e.write("[")
		e.newline()
		e.indent++
		e.printBlock(in.Body)
		if !e.atLineStart {
			e.newline()
		}
		e.indent--
		e.writeIndent()
		e.write("]")
		e.newline()
	}
}

func (e *SourceEncoder) writeRun(s string) {
	if !e.atLineStart && e.column+len(s) > e.maxColumn {
		e.newline()
	}
	e.writeIndent()
	e.write(s)
}

func (e *SourceEncoder) writeIndent() {
	if !e.atLineStart {
		return
	}
	e.write(strings.Repeat(e.indentStr, e.indent))
	e.atLineStart = false
}

func (e *SourceEncoder) write(s string) {
	e.buf.WriteString(s)
	e.column += len(s)
}

func (e *SourceEncoder) newline() {
	e.buf.WriteString("\n")
	e.atLineStart = true
	e.column = 0
}

// PrettyPrint cleans, scans and parses raw program text and prints it back
// in canonical layout.
func PrettyPrint(raw []byte) ([]byte, error) {
	tree, err := lang.Compile(source.Clean(string(raw)))
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := NewSourceEncoder(&buf).Encode(tree); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
