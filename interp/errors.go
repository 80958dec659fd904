package interp

import (
	"errors"
	"fmt"
	"math/big"
)

var (
	ErrIllegalMemoryAccess           = errors.New("pointer moved out of memory")
	ErrUnableToPrintValueAsCharacter = errors.New("unable to print value as character")
)

// UnprintableValueError carries the cell value an output instruction
// could not turn into a character.
type UnprintableValueError struct {
	Value *big.Int
}

func (e *UnprintableValueError) Error() string {
	return fmt.Sprintf("unable to print value %s as character", e.Value)
}

func (e *UnprintableValueError) Is(target error) bool {
	return target == ErrUnableToPrintValueAsCharacter
}
