package grammar

import (
	"github.com/kesuzu/llgram/compressor"
	"github.com/kesuzu/llgram/symbol"
)

// CompressedTable is a serializable rendering of a ParsingTable: a row
// per nonterminal (in Table.Nonterminals order), a column per lookahead
// literal (declared terminals, in declaration order, plus a trailing
// end-of-input column), compressed with a row-displacement table. The
// matrix being compressed is engine-specific, but the row-displacement
// technique itself is not.
type CompressedTable struct {
	Nonterminals []string                         `json:"nonterminals"`
	Lookaheads   []string                         `json:"lookaheads"`
	Table        *compressor.RowDisplacementTable `json:"table"`
}

// CompressTable renders tab into its dense (nonterminal x lookahead)
// form using syms for row/column order, then compresses it.
func CompressTable(tab *ParsingTable, syms *symbol.Table) (*CompressedTable, error) {
	nts := syms.Nonterminals()
	lits := append(append([]string{}, syms.Terminals()...), symbol.EOF)

	entries := make([]int, len(nts)*len(lits))
	for i, ntName := range nts {
		nt := symbol.Nonterminal(ntName)
		for j, lit := range lits {
			prodNum, ok := tab.Lookup(nt, lit)
			if !ok {
				entries[i*len(lits)+j] = compressor.ForbiddenValue
				continue
			}
			entries[i*len(lits)+j] = prodNum
		}
	}

	orig, err := compressor.NewOriginalTable(entries, len(lits))
	if err != nil {
		return nil, err
	}
	comp := compressor.NewRowDisplacementTable(compressor.ForbiddenValue)
	if err := comp.Compress(orig); err != nil {
		return nil, err
	}

	return &CompressedTable{
		Nonterminals: nts,
		Lookaheads:   lits,
		Table:        comp,
	}, nil
}

// Lookup mirrors ParsingTable.Lookup against the compressed form;
// Deserialize uses it to rebuild a ParsingTable.
func (c *CompressedTable) Lookup(ntName, lit string) (int, bool) {
	row := -1
	for i, n := range c.Nonterminals {
		if n == ntName {
			row = i
			break
		}
	}
	if row == -1 {
		return 0, false
	}
	col := -1
	for j, l := range c.Lookaheads {
		if l == lit {
			col = j
			break
		}
	}
	if col == -1 {
		return 0, false
	}
	v, err := c.Table.Lookup(row, col)
	if err != nil || v == compressor.ForbiddenValue {
		return 0, false
	}
	return v, true
}
