package lang

type parser struct {
	symbols []Symbol
}

// Parse builds the instruction tree for a symbol sequence.
//
// Bracket balance is checked globally before any node is built. A loop end
// that closes nothing is rejected with its index even when the counts
// agree, e.g. "][".
func Parse(symbols []Symbol) ([]Instruction, error) {
	opens, closes := countBrackets(symbols)
	if opens != closes {
		return nil, &UnmatchedBracketsError{Opens: opens, Closes: closes}
	}

	p := &parser{symbols: symbols}
	tree, _, err := p.parseBlock(0, 0)
	if err != nil {
		return nil, err
	}
	log.Debugf("parsed %d instructions (%d loops)", Count(tree), opens)
	return tree, nil
}

// Compile scans and parses cleaned source text.
func Compile(src string) ([]Instruction, error) {
	symbols, err := Scan(src)
	if err != nil {
		return nil, err
	}
	return Parse(symbols)
}

func countBrackets(symbols []Symbol) (opens, closes int) {
	for _, s := range symbols {
		switch s {
		case SymbolLoopStart:
			opens++
		case SymbolLoopEnd:
			closes++
		}
	}
	return opens, closes
}

// parseBlock parses symbols from start until the loop end that closes the
// current block, or until the input runs out at depth 0. It returns the
// block and the index of the terminating loop end (or len(symbols)).
// Parse rejects unequal bracket counts first, so every nested block meets
// its loop end before the input runs out.
func (p *parser) parseBlock(start, depth int) ([]Instruction, int, error) {
	var block []Instruction
	i := start
	for i < len(p.symbols) {
		switch p.symbols[i] {
		case SymbolMoveRight:
			block = append(block, at(MovePointer(1), i))
		case SymbolMoveLeft:
			block = append(block, at(MovePointer(-1), i))
		case SymbolIncrement:
			block = append(block, at(ModifyCell(1), i))
		case SymbolDecrement:
			block = append(block, at(ModifyCell(-1), i))
		case SymbolOutput:
			block = append(block, at(Output(), i))
		case SymbolInput:
			block = append(block, at(Input(), i))
		case SymbolLoopStart:
			body, end, err := p.parseBlock(i+1, depth+1)
			if err != nil {
				return nil, 0, err
			}
			block = append(block, at(Loop(body...), i))
			i = end
		case SymbolLoopEnd:
			if depth == 0 {
				return nil, 0, &UnexpectedLoopEndError{Index: i}
			}
			return block, i, nil
		}
		i++
	}
	return block, i, nil
}

func at(in Instruction, offset int) Instruction {
	in.Offset = offset
	return in
}

// Flatten renders a tree back into symbols, wrapping each loop body in a
// loop start and loop end.
func Flatten(tree []Instruction) []Symbol {
	return flattenInto(nil, tree)
}

func flattenInto(out []Symbol, tree []Instruction) []Symbol {
	for _, in := range tree {
		switch in.Kind {
		case KindMovePointer:
			out = appendRepeated(out, in.Value, SymbolMoveRight, SymbolMoveLeft)
		case KindModifyCell:
			out = appendRepeated(out, in.Value, SymbolIncrement, SymbolDecrement)
		case KindLoop:
			out = append(out, SymbolLoopStart)
			out = flattenInto(out, in.Body)
			out = append(out, SymbolLoopEnd)
		case KindOutput:
			out = append(out, SymbolOutput)
		case KindInput:
			out = append(out, SymbolInput)
		}
	}
	return out
}

func appendRepeated(out []Symbol, n int, pos, neg Symbol) []Symbol {
	sym := pos
	if n < 0 {
		sym, n = neg, -n
	}
	for ; n > 0; n-- {
		out = append(out, sym)
	}
	return out
}
