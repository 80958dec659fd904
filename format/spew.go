package format

import (
	"io"

	"github.com/davecgh/go-spew/spew"

	"github.com/dhamidi/tape/lang"
)

var spewConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	DisableMethods:          true,
}

// SpewEncoder dumps the raw Go values of a tree. It is meant for
// debugging the parser.
type SpewEncoder struct {
	w    io.Writer
	tree []lang.Instruction
}

func NewSpewEncoder(w io.Writer) *SpewEncoder {
	return &SpewEncoder{w: w}
}

func (e *SpewEncoder) Encode(tree []lang.Instruction) error {
	e.tree = tree
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *SpewEncoder) MarshalText() ([]byte, error) {
	return []byte(spewConfig.Sdump(e.tree)), nil
}
