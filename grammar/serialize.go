package grammar

import (
	"github.com/kesuzu/llgram/symbol"
)

// SerializedSymbol is the JSON-friendly rendering of a symbol.Symbol:
// symbol.Symbol's fields are unexported, so a compiled grammar cannot
// be marshaled through it directly. A portable parsing table needs an
// explicit wire format distinct from the in-memory grammar types.
type SerializedSymbol struct {
	Terminal bool   `json:"terminal"`
	Text     string `json:"text"`
}

func serializeSymbol(s symbol.Symbol) SerializedSymbol {
	return SerializedSymbol{Terminal: s.IsTerminal(), Text: s.Text()}
}

func (s SerializedSymbol) toSymbol() symbol.Symbol {
	if s.Terminal {
		return symbol.Terminal(s.Text)
	}
	// serializeSymbol renders Epsilon as a non-terminal with empty text;
	// no real nonterminal has an empty name.
	if s.Text == "" {
		return symbol.Epsilon
	}
	return symbol.Nonterminal(s.Text)
}

// SerializedProduction is one row of the normalized production set.
type SerializedProduction struct {
	Num int                `json:"num"`
	LHS string             `json:"lhs"`
	RHS []SerializedSymbol `json:"rhs"`
}

// SerializedGrammar is the portable, wire-format rendering of a
// CompiledGrammar: everything the driver needs to parse (start symbol,
// terminal alphabet, productions, and the LL(1) table), and nothing
// that can be recomputed from them (FIRST/FOLLOW are generation-time
// scaffolding, not parse-time state). The table itself is stored
// compressed, the same way a generated parser's action/goto matrix is
// never shipped densely.
type SerializedGrammar struct {
	Start       string                 `json:"start"`
	Terminals   []string               `json:"terminals"`
	Productions []SerializedProduction `json:"productions"`
	Table       *CompressedTable       `json:"table"`
}

// Serialize renders cg into its portable wire format, compressing the
// LL(1) dispatch table.
func (cg *CompiledGrammar) Serialize() (*SerializedGrammar, error) {
	sg := &SerializedGrammar{
		Start:     cg.Grammar.Start.Text(),
		Terminals: cg.Grammar.Symbols.Terminals(),
	}

	for _, prod := range cg.Grammar.Productions.All() {
		rhs := make([]SerializedSymbol, len(prod.RHS))
		for i, sym := range prod.RHS {
			rhs[i] = serializeSymbol(sym)
		}
		sg.Productions = append(sg.Productions, SerializedProduction{
			Num: prod.Num,
			LHS: prod.LHS.Text(),
			RHS: rhs,
		})
	}

	ct, err := CompressTable(cg.Table, cg.Grammar.Symbols)
	if err != nil {
		return nil, err
	}
	sg.Table = ct

	return sg, nil
}

// Deserialize reconstructs a CompiledGrammar sufficient to drive a
// parse (driver.Parse only ever reads Grammar.Start,
// Grammar.Productions, and Table - First/Follow are generation-time
// scaffolding and are left nil). The dispatch table is decompressed
// back into a ParsingTable by exhaustively looking up every row/column
// the CompressedTable knows about.
func Deserialize(sg *SerializedGrammar) *CompiledGrammar {
	syms := symbol.NewTable()
	syms.RegisterStart(sg.Start)
	for _, lit := range sg.Terminals {
		syms.RegisterTerminal(lit)
	}

	ps := NewProductionSet()
	for _, sp := range sg.Productions {
		syms.RegisterNonterminal(sp.LHS)
		rhs := make([]symbol.Symbol, len(sp.RHS))
		for i, ss := range sp.RHS {
			rhs[i] = ss.toSymbol()
			if rhs[i].IsNonterminal() {
				syms.RegisterNonterminal(ss.Text)
			}
		}
		ps.Append(symbol.Nonterminal(sp.LHS), rhs)
	}

	tab := newParsingTable()
	for _, ntName := range sg.Table.Nonterminals {
		for _, lit := range sg.Table.Lookaheads {
			prodNum, ok := sg.Table.Lookup(ntName, lit)
			if !ok {
				continue
			}
			tab.set(symbol.Nonterminal(ntName), lit, prodNum)
		}
	}

	return &CompiledGrammar{
		Grammar: &Grammar{
			Start:       symbol.Nonterminal(sg.Start),
			Productions: ps,
			Symbols:     syms,
		},
		Table: tab,
	}
}
