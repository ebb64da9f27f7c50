// Package symbol defines the tagged grammar-symbol value shared by the
// normalizer, the FIRST/FOLLOW engines, and the parser driver.
package symbol

import "fmt"

type Kind uint8

const (
	KindNil Kind = iota
	KindTerminal
	KindNonterminal
	KindEpsilon
)

func (k Kind) String() string {
	switch k {
	case KindTerminal:
		return "terminal"
	case KindNonterminal:
		return "non-terminal"
	case KindEpsilon:
		return "epsilon"
	default:
		return "nil"
	}
}

// EOF is the lookahead literal that stands for end-of-input in the
// parser driver and as a column key of the LL(1) table. FIRST/FOLLOW
// sets do not store it: they record epsilon and end-of-input with
// separate boolean flags.
const EOF = ""

// Symbol is a tagged value: Terminal(literal), Nonterminal(name), or
// Epsilon. Equality is structural, so two Symbols built from equal
// Kind/Text are interchangeable as map keys.
type Symbol struct {
	kind Kind
	text string
}

var Nil = Symbol{}

func Terminal(literal string) Symbol {
	return Symbol{kind: KindTerminal, text: literal}
}

func Nonterminal(name string) Symbol {
	return Symbol{kind: KindNonterminal, text: name}
}

var Epsilon = Symbol{kind: KindEpsilon}

func (s Symbol) Kind() Kind {
	return s.kind
}

func (s Symbol) IsNil() bool {
	return s.kind == KindNil
}

func (s Symbol) IsTerminal() bool {
	return s.kind == KindTerminal
}

func (s Symbol) IsNonterminal() bool {
	return s.kind == KindNonterminal
}

func (s Symbol) IsEpsilon() bool {
	return s.kind == KindEpsilon
}

// Text returns the literal (for a terminal) or the name (for a
// nonterminal). It is the empty string for Epsilon and Nil.
func (s Symbol) Text() string {
	return s.text
}

func (s Symbol) String() string {
	switch s.kind {
	case KindTerminal:
		return fmt.Sprintf("%q", s.text)
	case KindNonterminal:
		return s.text
	case KindEpsilon:
		return "ε"
	default:
		return "<nil>"
	}
}

// Table interns terminal and nonterminal names encountered while a
// grammar is normalized. It exists to answer two questions
// deterministically: which nonterminal names have already been
// registered (so repeated references to the same name share one
// identity), and in what order terminals were declared (the longest-
// match tokenizer breaks length ties by declaration order).
type Table struct {
	nonterminals     map[string]bool
	nonterminalOrder []string
	terminalOrder    []string
	terminalExists   map[string]bool
	start            string
}

func NewTable() *Table {
	return &Table{
		nonterminals:   map[string]bool{},
		terminalExists: map[string]bool{},
	}
}

func (t *Table) RegisterStart(name string) {
	t.start = name
	t.RegisterNonterminal(name)
}

func (t *Table) Start() string {
	return t.start
}

func (t *Table) RegisterNonterminal(name string) {
	if t.nonterminals[name] {
		return
	}
	t.nonterminals[name] = true
	t.nonterminalOrder = append(t.nonterminalOrder, name)
}

func (t *Table) HasNonterminal(name string) bool {
	return t.nonterminals[name]
}

// Nonterminals returns every registered nonterminal name in the order
// it was first registered (start symbol first).
func (t *Table) Nonterminals() []string {
	return t.nonterminalOrder
}

func (t *Table) RegisterTerminal(literal string) {
	if t.terminalExists[literal] {
		return
	}
	t.terminalExists[literal] = true
	t.terminalOrder = append(t.terminalOrder, literal)
}

// Terminals returns the terminal alphabet in declaration order.
func (t *Table) Terminals() []string {
	return t.terminalOrder
}
