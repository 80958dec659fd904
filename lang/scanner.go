package lang

import "github.com/tliron/commonlog"

var log = commonlog.GetLogger("tape.lang")

type Scanner struct {
	input []rune
	pos   int
}

func NewScanner(src string) *Scanner {
	return &Scanner{
		input: []rune(src),
		pos:   0,
	}
}

// Position returns the rune index of the next character to scan.
func (s *Scanner) Position() int {
	return s.pos
}

func (s *Scanner) More() bool {
	return s.pos < len(s.input)
}

// Next scans one symbol. The position does not advance past an
// unrecognized character, so repeated calls keep returning the same error.
// An exhausted scanner returns ErrEndOfInput.
func (s *Scanner) Next() (Symbol, error) {
	if !s.More() {
		return 0, ErrEndOfInput
	}
	ch := s.input[s.pos]
	sym, ok := Lookup(ch)
	if !ok {
		return 0, &UnrecognizedSymbolError{Symbol: ch, Index: s.pos}
	}
	s.pos++
	return sym, nil
}

// Scan converts cleaned source text into symbols, stopping at the first
// unrecognized character.
func Scan(src string) ([]Symbol, error) {
	s := NewScanner(src)
	symbols := make([]Symbol, 0, len(s.input))
	for s.More() {
		sym, err := s.Next()
		if err != nil {
			return nil, err
		}
		symbols = append(symbols, sym)
	}
	log.Debugf("scanned %d symbols", len(symbols))
	return symbols, nil
}
