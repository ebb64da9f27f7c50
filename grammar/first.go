package grammar

import (
	"fmt"

	"github.com/kesuzu/llgram/symbol"
)

// firstEntry is the FIRST set of one nonterminal (or of one production's
// remaining rhs): the terminals that can begin some derivation, plus an
// "empty" flag recording whether the empty string is also derivable.
type firstEntry struct {
	symbols map[symbol.Symbol]struct{}
	empty   bool
}

func newFirstEntry() *firstEntry {
	return &firstEntry{symbols: map[symbol.Symbol]struct{}{}}
}

func (e *firstEntry) add(sym symbol.Symbol) bool {
	if _, ok := e.symbols[sym]; ok {
		return false
	}
	e.symbols[sym] = struct{}{}
	return true
}

func (e *firstEntry) addEmpty() bool {
	if e.empty {
		return false
	}
	e.empty = true
	return true
}

func (e *firstEntry) mergeExceptEmpty(other *firstEntry) bool {
	if other == nil {
		return false
	}
	changed := false
	for sym := range other.symbols {
		if e.add(sym) {
			changed = true
		}
	}
	return changed
}

// FirstSet holds FIRST(A) for every nonterminal A of a grammar.
type FirstSet struct {
	set map[symbol.Symbol]*firstEntry
}

func newFirstSet(ps *ProductionSet) *FirstSet {
	fs := &FirstSet{set: map[symbol.Symbol]*firstEntry{}}
	for _, p := range ps.All() {
		if _, ok := fs.set[p.LHS]; ok {
			continue
		}
		fs.set[p.LHS] = newFirstEntry()
	}
	return fs
}

// Contains reports whether terminal lit is in FIRST(nt).
func (fs *FirstSet) Contains(nt symbol.Symbol, lit string) bool {
	e := fs.set[nt]
	if e == nil {
		return false
	}
	_, ok := e.symbols[symbol.Terminal(lit)]
	return ok
}

// HasEmpty reports whether nt can derive the empty string.
func (fs *FirstSet) HasEmpty(nt symbol.Symbol) bool {
	e := fs.set[nt]
	return e != nil && e.empty
}

// Terminals returns FIRST(nt) as a slice of terminal literals.
func (fs *FirstSet) Terminals(nt symbol.Symbol) []string {
	e := fs.set[nt]
	if e == nil {
		return nil
	}
	var out []string
	for sym := range e.symbols {
		out = append(out, sym.Text())
	}
	return out
}

// find computes FIRST of the rhs suffix prod.RHS[head:], the building
// block FOLLOW-set computation needs.
func (fs *FirstSet) find(prod *Production, head int) (*firstEntry, error) {
	entry := newFirstEntry()
	if len(prod.RHS) <= head {
		entry.addEmpty()
		return entry, nil
	}
	for _, sym := range prod.RHS[head:] {
		if sym.IsEpsilon() {
			entry.addEmpty()
			return entry, nil
		}
		if sym.IsTerminal() {
			entry.add(sym)
			return entry, nil
		}

		e := fs.findBySymbol(sym)
		if e == nil {
			return nil, fmt.Errorf("no FIRST entry for symbol: %v", sym)
		}
		for s := range e.symbols {
			entry.add(s)
		}
		if !e.empty {
			return entry, nil
		}
	}
	entry.addEmpty()
	return entry, nil
}

func (fs *FirstSet) findBySymbol(sym symbol.Symbol) *firstEntry {
	return fs.set[sym]
}

// genFirstSet computes FIRST(A) for every nonterminal A by a
// semi-naive fixed-point iteration: repeatedly scan every
// production, merging its contribution into FIRST(lhs), until a full
// pass makes no further change.
func genFirstSet(ps *ProductionSet) (*FirstSet, error) {
	fs := newFirstSet(ps)
	for {
		more := false
		for _, prod := range ps.All() {
			acc := fs.findBySymbol(prod.LHS)
			changed, err := genProdFirstEntry(fs, acc, prod)
			if err != nil {
				return nil, err
			}
			if changed {
				more = true
			}
		}
		if !more {
			break
		}
	}
	return fs, nil
}

func genProdFirstEntry(fs *FirstSet, acc *firstEntry, prod *Production) (bool, error) {
	if prod.IsEmpty() {
		return acc.addEmpty(), nil
	}

	for _, sym := range prod.RHS {
		if sym.IsEpsilon() {
			return acc.addEmpty(), nil
		}
		if sym.IsTerminal() {
			return acc.add(sym), nil
		}

		e := fs.findBySymbol(sym)
		if e == nil {
			return false, fmt.Errorf("no FIRST entry for symbol: %v", sym)
		}
		changed := acc.mergeExceptEmpty(e)
		if !e.empty {
			return changed, nil
		}
	}
	return acc.addEmpty(), nil
}
