// Package ebnf implements the grammar-file front end: the textual EBNF
// syntax is tokenized and parsed into the in-memory Grammar/Expr data
// model. The LL(1) core only ever consumes an already-built *Grammar,
// but a runnable tool still needs a front end to produce one.
package ebnf

import "strings"

type Kind int

const (
	KindEpsilon Kind = iota
	KindTerminal
	KindNonterminal
	KindConcat
	KindAlternation
	KindOptional
	KindIteration
	KindOneOrMore
)

// Expr is a node of the recursive EBNF expression tree. Concat and
// Alternation carry their operands in Children; Optional, Iteration,
// and OneOrMore carry theirs in Child.
type Expr struct {
	Kind     Kind
	Literal  string // set when Kind == KindTerminal
	Name     string // set when Kind == KindNonterminal
	Child    *Expr
	Children []*Expr
}

func Eps() *Expr                { return &Expr{Kind: KindEpsilon} }
func Term(lit string) *Expr     { return &Expr{Kind: KindTerminal, Literal: lit} }
func Non(name string) *Expr     { return &Expr{Kind: KindNonterminal, Name: name} }
func Concat(cs ...*Expr) *Expr  { return &Expr{Kind: KindConcat, Children: cs} }
func Alt(cs ...*Expr) *Expr     { return &Expr{Kind: KindAlternation, Children: cs} }
func Optional(c *Expr) *Expr    { return &Expr{Kind: KindOptional, Child: c} }
func Iteration(c *Expr) *Expr   { return &Expr{Kind: KindIteration, Child: c} }
func OneOrMore(c *Expr) *Expr   { return &Expr{Kind: KindOneOrMore, Child: c} }

// String pretty-prints the expression back into the EBNF syntax,
// used by Grammar.String to round-trip a grammar back to source.
func (e *Expr) String() string {
	if e == nil {
		return ""
	}
	switch e.Kind {
	case KindEpsilon:
		return "ε"
	case KindTerminal:
		return `"` + e.Literal + `"`
	case KindNonterminal:
		return e.Name
	case KindConcat:
		parts := make([]string, len(e.Children))
		for i, c := range e.Children {
			if c.Kind == KindAlternation {
				parts[i] = "( " + c.String() + " )"
			} else {
				parts[i] = c.String()
			}
		}
		return strings.Join(parts, " ")
	case KindAlternation:
		parts := make([]string, len(e.Children))
		for i, c := range e.Children {
			parts[i] = c.String()
		}
		return strings.Join(parts, " | ")
	case KindOptional:
		return "[ " + e.Child.String() + " ]"
	case KindIteration:
		return "{ " + e.Child.String() + " }"
	case KindOneOrMore:
		return "( " + e.Child.String() + " )+"
	default:
		return "?"
	}
}

// Grammar is the triple <start, rules>: rules maps a nonterminal name
// to its ordered list of alternative right-hand sides. Order records
// the order in which nonterminals first appear as the lhs of a rule;
// Start is Order[0].
type Grammar struct {
	Start string
	Rules map[string][]*Expr
	Order []string
}

func NewGrammar() *Grammar {
	return &Grammar{Rules: map[string][]*Expr{}}
}

// AddRule appends rhs as one more alternative right-hand side for
// lhs, tracking the first-appearance order so that Start and String
// can reproduce source order.
func (g *Grammar) AddRule(lhs string, rhs *Expr) {
	if _, ok := g.Rules[lhs]; !ok {
		g.Order = append(g.Order, lhs)
		if g.Start == "" {
			g.Start = lhs
		}
	}
	g.Rules[lhs] = append(g.Rules[lhs], rhs)
}

// String pretty-prints the grammar back into the EBNF syntax, one
// "lhs = rhs ;" line per alternative, in source order.
func (g *Grammar) String() string {
	var b strings.Builder
	for _, name := range g.Order {
		for _, rhs := range g.Rules[name] {
			b.WriteString(name)
			b.WriteString(" = ")
			b.WriteString(rhs.String())
			b.WriteString(" ;\n")
		}
	}
	return b.String()
}
