package grammar

import "github.com/kesuzu/llgram/symbol"

// tableKey addresses one cell of the LL(1) dispatch table: a
// nonterminal and a lookahead literal (symbol.EOF stands for
// end-of-input).
type tableKey struct {
	nonterminal symbol.Symbol
	lookahead   string
}

// ParsingTable is the LL(1) dispatch table: table[L][t] names the
// production to use when the driver is expecting nonterminal L and
// the lookahead literal is t.
type ParsingTable struct {
	cells map[tableKey]int
	keys  map[symbol.Symbol][]string
}

func newParsingTable() *ParsingTable {
	return &ParsingTable{
		cells: map[tableKey]int{},
		keys:  map[symbol.Symbol][]string{},
	}
}

// Lookup returns the production number to expand nonterminal nt when
// the lookahead literal is lit (symbol.EOF for end-of-input), or
// (0, false) on a miss.
func (t *ParsingTable) Lookup(nt symbol.Symbol, lit string) (int, bool) {
	p, ok := t.cells[tableKey{nonterminal: nt, lookahead: lit}]
	return p, ok
}

// ExpectedLiterals returns the lookahead literals table[nt] is defined
// for, used to report the expected set on an unexpected-token error.
func (t *ParsingTable) ExpectedLiterals(nt symbol.Symbol) []string {
	return t.keys[nt]
}

func (t *ParsingTable) set(nt symbol.Symbol, lit string, prodNum int) (conflict bool, existing int) {
	key := tableKey{nonterminal: nt, lookahead: lit}
	if existing, ok := t.cells[key]; ok {
		if existing != prodNum {
			return true, existing
		}
		return false, existing
	}
	t.cells[key] = prodNum
	t.keys[nt] = append(t.keys[nt], lit)
	return false, 0
}
