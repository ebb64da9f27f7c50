package grammar

import "github.com/kesuzu/llgram/symbol"

// buildParsingTable builds the LL(1) dispatch table: for each
// production, FIRST contributes entries keyed by its own literals,
// and if the production is nullable, FOLLOW(lhs) contributes entries
// keyed by what can follow it (including end-of-input, represented as
// symbol.EOF, when FOLLOW(lhs) contains it).
func buildParsingTable(ps *ProductionSet, fst *FirstSet, flw *FollowSet) (*ParsingTable, error) {
	tab := newParsingTable()

	for _, prod := range ps.All() {
		entry, err := fst.find(prod, 0)
		if err != nil {
			return nil, err
		}

		for sym := range entry.symbols {
			if err := writeCell(tab, prod.LHS, sym.Text(), prod.Num); err != nil {
				return nil, err
			}
		}

		if !entry.empty {
			continue
		}

		for _, lit := range flw.Terminals(prod.LHS) {
			if err := writeCell(tab, prod.LHS, lit, prod.Num); err != nil {
				return nil, err
			}
		}
		if flw.HasEOF(prod.LHS) {
			if err := writeCell(tab, prod.LHS, symbol.EOF, prod.Num); err != nil {
				return nil, err
			}
		}
	}

	return tab, nil
}

func writeCell(tab *ParsingTable, nt symbol.Symbol, lit string, prodNum int) error {
	conflict, existing := tab.set(nt, lit, prodNum)
	if !conflict {
		return nil
	}
	return &ConflictError{
		Nonterminal: nt.Text(),
		Lookahead:   lit,
		Productions: []int{existing, prodNum},
	}
}
