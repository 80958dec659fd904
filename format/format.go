package format

import (
	"encoding"

	"github.com/dhamidi/tape/lang"
)

type Encoder interface {
	encoding.TextMarshaler
	Encode(tree []lang.Instruction) error
}
