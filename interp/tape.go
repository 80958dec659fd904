package interp

import (
	"math/big"
)

// Tape is the growable cell memory of a running program together with
// its pointer. A fresh tape holds a single zero cell.
//
// When bits is non-zero every cell is kept in [0, 2^bits) by reducing
// after each modification. Zero means cells are unbounded signed
// integers.
type Tape struct {
	cells   []*big.Int
	pointer int
	modulus *big.Int
}

func NewTape(bits uint) *Tape {
	t := &Tape{
		cells: []*big.Int{new(big.Int)},
	}
	if bits > 0 {
		t.modulus = new(big.Int).Lsh(big.NewInt(1), bits)
	}
	return t
}

func (t *Tape) Pointer() int {
	return t.pointer
}

func (t *Tape) Len() int {
	return len(t.cells)
}

// Move shifts the pointer by offset, growing the tape with zero cells up
// to and including the target index when it lies past the end.
func (t *Tape) Move(offset int) error {
	target := t.pointer + offset
	if target < 0 {
		return ErrIllegalMemoryAccess
	}
	if target >= len(t.cells) {
		grown := target - len(t.cells) + 1
		for i := 0; i < grown; i++ {
			t.cells = append(t.cells, new(big.Int))
		}
		log.Debugf("tape grew by %d to %d cells", grown, len(t.cells))
	}
	t.pointer = target
	return nil
}

// Modify adds delta to the current cell.
func (t *Tape) Modify(delta int) {
	cell := t.cells[t.pointer]
	cell.Add(cell, big.NewInt(int64(delta)))
	if t.modulus != nil {
		cell.Mod(cell, t.modulus)
	}
}

// Store overwrites the current cell.
func (t *Tape) Store(v *big.Int) {
	cell := t.cells[t.pointer]
	cell.Set(v)
	if t.modulus != nil {
		cell.Mod(cell, t.modulus)
	}
}

func (t *Tape) IsZero() bool {
	return t.cells[t.pointer].Sign() == 0
}

// Value returns a copy of the current cell.
func (t *Tape) Value() *big.Int {
	return new(big.Int).Set(t.cells[t.pointer])
}

// Cell returns a copy of the cell at index i, or nil when i is out of
// range.
func (t *Tape) Cell(i int) *big.Int {
	if i < 0 || i >= len(t.cells) {
		return nil
	}
	return new(big.Int).Set(t.cells[i])
}

// Cells returns copies of all cells.
func (t *Tape) Cells() []*big.Int {
	out := make([]*big.Int, len(t.cells))
	for i, c := range t.cells {
		out[i] = new(big.Int).Set(c)
	}
	return out
}
