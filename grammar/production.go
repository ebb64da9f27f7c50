package grammar

import "github.com/kesuzu/llgram/symbol"

// Production is a single (lhs, rhs) pair of the normalized grammar.
// Num is the production's index, which is meaningful: it is what
// parse table entries identify.
type Production struct {
	Num int
	LHS symbol.Symbol
	RHS []symbol.Symbol
}

func (p *Production) IsEmpty() bool {
	return len(p.RHS) == 0
}

func (p *Production) String() string {
	if p.IsEmpty() {
		return p.LHS.String() + " -> ε"
	}
	s := p.LHS.String() + " ->"
	for _, sym := range p.RHS {
		s += " " + sym.String()
	}
	return s
}

// ProductionSet holds the ordered, stable production list of the
// normalized grammar, plus a by-lhs index served by ByLHS.
type ProductionSet struct {
	all   []*Production
	byLHS map[symbol.Symbol][]*Production
}

func NewProductionSet() *ProductionSet {
	return &ProductionSet{
		byLHS: map[symbol.Symbol][]*Production{},
	}
}

// Append records a new production for lhs and assigns it the next
// production number; production order is stable (append-only).
func (ps *ProductionSet) Append(lhs symbol.Symbol, rhs []symbol.Symbol) *Production {
	p := &Production{
		Num: len(ps.all),
		LHS: lhs,
		RHS: rhs,
	}
	ps.all = append(ps.all, p)
	ps.byLHS[lhs] = append(ps.byLHS[lhs], p)
	return p
}

func (ps *ProductionSet) All() []*Production {
	return ps.all
}

func (ps *ProductionSet) ByLHS(lhs symbol.Symbol) []*Production {
	return ps.byLHS[lhs]
}

func (ps *ProductionSet) Len() int {
	return len(ps.all)
}
