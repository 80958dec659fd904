package lang

import (
	"fmt"
	"strings"
)

type InstructionKind int

const (
	KindMovePointer InstructionKind = iota
	KindModifyCell
	KindLoop
	KindOutput
	KindInput
)

var instructionKindNames = map[InstructionKind]string{
	KindMovePointer: "MovePointer",
	KindModifyCell:  "ModifyCell",
	KindLoop:        "Loop",
	KindOutput:      "Output",
	KindInput:       "Input",
}

func (k InstructionKind) String() string {
	if name, ok := instructionKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Instruction is a node of the parsed program tree. Value holds the
// pointer offset for MovePointer and the delta for ModifyCell. Body is
// only set for loops. Offset is the index of the symbol the node was
// parsed from; for loops that is the loop start.
type Instruction struct {
	Kind   InstructionKind
	Value  int
	Body   []Instruction
	Offset int
}

func MovePointer(offset int) Instruction {
	return Instruction{Kind: KindMovePointer, Value: offset}
}

func ModifyCell(delta int) Instruction {
	return Instruction{Kind: KindModifyCell, Value: delta}
}

func Loop(body ...Instruction) Instruction {
	return Instruction{Kind: KindLoop, Body: body}
}

func Output() Instruction {
	return Instruction{Kind: KindOutput}
}

func Input() Instruction {
	return Instruction{Kind: KindInput}
}

// Equal compares two instructions structurally, ignoring offsets.
func (in Instruction) Equal(other Instruction) bool {
	if in.Kind != other.Kind || in.Value != other.Value {
		return false
	}
	return EqualTrees(in.Body, other.Body)
}

// EqualTrees compares two instruction sequences structurally, ignoring
// offsets.
func EqualTrees(a, b []Instruction) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

func (in Instruction) String() string {
	switch in.Kind {
	case KindMovePointer, KindModifyCell:
		return fmt.Sprintf("%s(%+d)", in.Kind, in.Value)
	case KindLoop:
		parts := make([]string, len(in.Body))
		for i, child := range in.Body {
			parts[i] = child.String()
		}
		return "Loop[" + strings.Join(parts, " ") + "]"
	default:
		return in.Kind.String()
	}
}

// Count returns the number of nodes in the tree, loops included.
func Count(tree []Instruction) int {
	n := 0
	for _, in := range tree {
		n++
		if in.Kind == KindLoop {
			n += Count(in.Body)
		}
	}
	return n
}
