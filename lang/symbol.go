package lang

type Symbol int

const (
	SymbolMoveRight Symbol = iota
	SymbolMoveLeft
	SymbolIncrement
	SymbolDecrement
	SymbolLoopStart
	SymbolLoopEnd
	SymbolOutput
	SymbolInput
)

var symbolNames = map[Symbol]string{
	SymbolMoveRight: "MoveRight",
	SymbolMoveLeft:  "MoveLeft",
	SymbolIncrement: "Increment",
	SymbolDecrement: "Decrement",
	SymbolLoopStart: "LoopStart",
	SymbolLoopEnd:   "LoopEnd",
	SymbolOutput:    "Output",
	SymbolInput:     "Input",
}

var symbolChars = map[Symbol]rune{
	SymbolMoveRight: '>',
	SymbolMoveLeft:  '<',
	SymbolIncrement: '+',
	SymbolDecrement: '-',
	SymbolLoopStart: '[',
	SymbolLoopEnd:   ']',
	SymbolOutput:    '.',
	SymbolInput:     ',',
}

var charSymbols = map[rune]Symbol{
	'>': SymbolMoveRight,
	'<': SymbolMoveLeft,
	'+': SymbolIncrement,
	'-': SymbolDecrement,
	'[': SymbolLoopStart,
	']': SymbolLoopEnd,
	'.': SymbolOutput,
	',': SymbolInput,
}

func (s Symbol) String() string {
	if name, ok := symbolNames[s]; ok {
		return name
	}
	return "Unknown"
}

// Char returns the source character s was scanned from, or 0 for an
// unknown symbol.
func (s Symbol) Char() rune {
	return symbolChars[s]
}

// Lookup maps a source character to its symbol.
func Lookup(r rune) (Symbol, bool) {
	s, ok := charSymbols[r]
	return s, ok
}

// SymbolString renders a symbol sequence back to source text.
func SymbolString(symbols []Symbol) string {
	buf := make([]rune, len(symbols))
	for i, s := range symbols {
		buf[i] = s.Char()
	}
	return string(buf)
}
