package grammar

import (
	"strings"

	"github.com/kesuzu/llgram/ebnf"
	"github.com/kesuzu/llgram/symbol"
)

// Grammar is the normalized grammar: a flat production list plus the
// start symbol and the table of nonterminal/terminal names seen during
// normalization.
type Grammar struct {
	Start       symbol.Symbol
	Productions *ProductionSet
	Symbols     *symbol.Table
}

// canonicalize folds a rule name to its canonical nonterminal spelling:
// only the first byte is uppercased, so "expr" and "Expr" are unified
// to the same nonterminal on purpose.
func canonicalize(name string) string {
	if name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

// hiddenNames generates fresh auxiliary nonterminal names: a monotonic
// counter rendered in bijective base-26 (A, B, ..., Z, AA, AB, ...),
// prefixed with "_" to mark them hidden.
type hiddenNames struct {
	n int
}

func (h *hiddenNames) next() string {
	name := "_" + bijectiveBase26(h.n)
	h.n++
	return name
}

func bijectiveBase26(n int) string {
	n++
	var buf []byte
	for n > 0 {
		n--
		buf = append(buf, byte('A'+n%26))
		n /= 26
	}
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return string(buf)
}

// Normalize expands an EBNF grammar into a flat production list,
// introducing fresh hidden nonterminals for Alternation, Optional,
// Iteration, and OneOrMore. It reports a semantic error if some rhs
// references a nonterminal that has no rule.
func Normalize(g *ebnf.Grammar) (*Grammar, error) {
	tab := symbol.NewTable()
	start := canonicalize(g.Start)
	tab.RegisterStart(start)
	for _, name := range g.Order {
		tab.RegisterNonterminal(canonicalize(name))
	}

	ps := NewProductionSet()
	h := &hiddenNames{}
	for _, name := range g.Order {
		lhs := symbol.Nonterminal(canonicalize(name))
		for _, rhs := range g.Rules[name] {
			expanded, err := expand(rhs, ps, tab, h)
			if err != nil {
				return nil, err
			}
			ps.Append(lhs, expanded)
		}
	}

	if err := checkClosedness(ps, tab); err != nil {
		return nil, err
	}

	return &Grammar{
		Start:       symbol.Nonterminal(start),
		Productions: ps,
		Symbols:     tab,
	}, nil
}

// expand implements the per-construct expansion rules. It returns the
// symbol sequence representing the expansion site and may append new
// productions to ps along the way.
func expand(e *ebnf.Expr, ps *ProductionSet, tab *symbol.Table, h *hiddenNames) ([]symbol.Symbol, error) {
	switch e.Kind {
	case ebnf.KindEpsilon:
		return []symbol.Symbol{symbol.Epsilon}, nil

	case ebnf.KindTerminal:
		tab.RegisterTerminal(e.Literal)
		return []symbol.Symbol{symbol.Terminal(e.Literal)}, nil

	case ebnf.KindNonterminal:
		name := canonicalize(e.Name)
		return []symbol.Symbol{symbol.Nonterminal(name)}, nil

	case ebnf.KindConcat:
		var out []symbol.Symbol
		for _, c := range e.Children {
			cs, err := expand(c, ps, tab, h)
			if err != nil {
				return nil, err
			}
			out = append(out, cs...)
		}
		return out, nil

	case ebnf.KindAlternation:
		name := h.next()
		tab.RegisterNonterminal(name)
		lhs := symbol.Nonterminal(name)
		for _, c := range e.Children {
			rhs, err := expand(c, ps, tab, h)
			if err != nil {
				return nil, err
			}
			ps.Append(lhs, rhs)
		}
		return []symbol.Symbol{lhs}, nil

	case ebnf.KindOptional:
		name := h.next()
		tab.RegisterNonterminal(name)
		lhs := symbol.Nonterminal(name)
		rhs, err := expand(e.Child, ps, tab, h)
		if err != nil {
			return nil, err
		}
		ps.Append(lhs, rhs)
		ps.Append(lhs, []symbol.Symbol{symbol.Epsilon})
		return []symbol.Symbol{lhs}, nil

	case ebnf.KindIteration:
		name := h.next()
		tab.RegisterNonterminal(name)
		lhs := symbol.Nonterminal(name)
		inner, err := expand(e.Child, ps, tab, h)
		if err != nil {
			return nil, err
		}
		ps.Append(lhs, []symbol.Symbol{symbol.Epsilon})
		ps.Append(lhs, append(append([]symbol.Symbol{}, inner...), lhs))
		return []symbol.Symbol{lhs}, nil

	case ebnf.KindOneOrMore:
		name := h.next()
		tab.RegisterNonterminal(name)
		tailName := h.next()
		tab.RegisterNonterminal(tailName)
		lhs := symbol.Nonterminal(name)
		tail := symbol.Nonterminal(tailName)

		inner, err := expand(e.Child, ps, tab, h)
		if err != nil {
			return nil, err
		}
		body := append(append([]symbol.Symbol{}, inner...), tail)
		ps.Append(lhs, body)
		ps.Append(tail, body)
		ps.Append(tail, []symbol.Symbol{symbol.Epsilon})
		return []symbol.Symbol{lhs}, nil

	default:
		panic("unreachable: unknown EBNF expression kind")
	}
}

func checkClosedness(ps *ProductionSet, tab *symbol.Table) error {
	seen := map[string]bool{}
	for _, p := range ps.All() {
		for _, sym := range p.RHS {
			if !sym.IsNonterminal() || seen[sym.Text()] {
				continue
			}
			seen[sym.Text()] = true
			if !tab.HasNonterminal(sym.Text()) {
				return &SemanticError{
					Kind:    SemErrUndefinedNonterminal,
					Detail:  sym.Text(),
					Message: "nonterminal '" + sym.Text() + "' has no rule",
				}
			}
		}
	}
	return nil
}
