package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/tape/lang"
)

type JSONEncoder struct {
	w    io.Writer
	tree []lang.Instruction
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(tree []lang.Instruction) error {
	e.tree = tree
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	data := jsonProgram{
		Instructions: buildInstructions(e.tree),
		Count:        lang.Count(e.tree),
	}
	return json.MarshalIndent(data, "", "  ")
}

type jsonProgram struct {
	Instructions []jsonInstruction `json:"instructions"`
	Count        int               `json:"count"`
}

type jsonInstruction struct {
	Kind   string            `json:"kind"`
	Value  int               `json:"value,omitempty"`
	Offset int               `json:"offset"`
	Body   []jsonInstruction `json:"body,omitempty"`
}

func buildInstructions(tree []lang.Instruction) []jsonInstruction {
	out := make([]jsonInstruction, 0, len(tree))
	for _, in := range tree {
		ji := jsonInstruction{
			Kind:   in.Kind.String(),
			Value:  in.Value,
			Offset: in.Offset,
		}
		if in.Kind == lang.KindLoop {
			ji.Body = buildInstructions(in.Body)
		}
		out = append(out, ji)
	}
	return out
}
