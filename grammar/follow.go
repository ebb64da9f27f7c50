package grammar

import (
	"fmt"

	"github.com/kesuzu/llgram/symbol"
)

// followEntry is FOLLOW(A) for one nonterminal A: the terminals that
// can immediately follow A in some derivation, plus an eof flag
// recording whether A can be followed by end-of-input.
type followEntry struct {
	symbols map[symbol.Symbol]struct{}
	eof     bool
}

func newFollowEntry() *followEntry {
	return &followEntry{symbols: map[symbol.Symbol]struct{}{}}
}

func (e *followEntry) add(sym symbol.Symbol) bool {
	if _, ok := e.symbols[sym]; ok {
		return false
	}
	e.symbols[sym] = struct{}{}
	return true
}

func (e *followEntry) addEOF() bool {
	if e.eof {
		return false
	}
	e.eof = true
	return true
}

func (e *followEntry) merge(fst *firstEntry, flw *followEntry) bool {
	changed := false
	if fst != nil {
		for sym := range fst.symbols {
			if e.add(sym) {
				changed = true
			}
		}
	}
	if flw != nil {
		for sym := range flw.symbols {
			if e.add(sym) {
				changed = true
			}
		}
		if flw.eof && e.addEOF() {
			changed = true
		}
	}
	return changed
}

// FollowSet holds FOLLOW(A) for every nonterminal A of a grammar.
type FollowSet struct {
	set map[symbol.Symbol]*followEntry
}

func newFollowSet(ps *ProductionSet) *FollowSet {
	flw := &FollowSet{set: map[symbol.Symbol]*followEntry{}}
	for _, p := range ps.All() {
		if _, ok := flw.set[p.LHS]; ok {
			continue
		}
		flw.set[p.LHS] = newFollowEntry()
	}
	return flw
}

func (flw *FollowSet) find(sym symbol.Symbol) (*followEntry, error) {
	e, ok := flw.set[sym]
	if !ok {
		return nil, fmt.Errorf("no FOLLOW entry for symbol: %v", sym)
	}
	return e, nil
}

// Contains reports whether terminal lit is in FOLLOW(nt).
func (flw *FollowSet) Contains(nt symbol.Symbol, lit string) bool {
	e := flw.set[nt]
	if e == nil {
		return false
	}
	_, ok := e.symbols[symbol.Terminal(lit)]
	return ok
}

// HasEOF reports whether nt can be followed by end-of-input.
func (flw *FollowSet) HasEOF(nt symbol.Symbol) bool {
	e := flw.set[nt]
	return e != nil && e.eof
}

// Terminals returns FOLLOW(nt) as a slice of terminal literals.
func (flw *FollowSet) Terminals(nt symbol.Symbol) []string {
	e := flw.set[nt]
	if e == nil {
		return nil
	}
	var out []string
	for sym := range e.symbols {
		out = append(out, sym.Text())
	}
	return out
}

// genFollowSet computes FOLLOW(A) for every nonterminal A: start with
// FOLLOW(start symbol) containing end-of-input, then
// repeatedly scan every occurrence of a nonterminal on some rhs,
// merging FIRST of what follows it (and FOLLOW of the lhs, if what
// follows it can derive empty), until a full pass makes no change.
func genFollowSet(ps *ProductionSet, start symbol.Symbol, fst *FirstSet) (*FollowSet, error) {
	var nts []symbol.Symbol
	seen := map[symbol.Symbol]bool{}
	for _, p := range ps.All() {
		if seen[p.LHS] {
			continue
		}
		seen[p.LHS] = true
		nts = append(nts, p.LHS)
	}

	flw := newFollowSet(ps)
	for {
		more := false
		for _, nt := range nts {
			e, err := flw.find(nt)
			if err != nil {
				return nil, err
			}
			if nt == start {
				if e.addEOF() {
					more = true
				}
			}
			for _, prod := range ps.All() {
				for i, sym := range prod.RHS {
					if sym != nt {
						continue
					}
					rest, err := fst.find(prod, i+1)
					if err != nil {
						return nil, err
					}
					if e.merge(rest, nil) {
						more = true
					}
					if rest.empty {
						lhsFollow, err := flw.find(prod.LHS)
						if err != nil {
							return nil, err
						}
						if e.merge(nil, lhsFollow) {
							more = true
						}
					}
				}
			}
		}
		if !more {
			break
		}
	}
	return flw, nil
}
