// Package grammar implements the normalized-grammar core: expanding
// EBNF into flat productions, computing FIRST and FOLLOW sets, and
// building the LL(1) dispatch table.
package grammar

import (
	"github.com/kesuzu/llgram/ebnf"
)

// CompiledGrammar is everything the parser driver needs to run: the
// normalized production set, its symbol table, and the LL(1) table
// built from it.
type CompiledGrammar struct {
	Grammar *Grammar
	First   *FirstSet
	Follow  *FollowSet
	Table   *ParsingTable
}

// Compile runs the full generation pipeline: normalize the parsed
// EBNF grammar, compute FIRST and FOLLOW, and build the LL(1) table.
// Errors here are generation errors and are always returned before
// any parser callable is produced.
func Compile(g *ebnf.Grammar) (*CompiledGrammar, error) {
	norm, err := Normalize(g)
	if err != nil {
		return nil, err
	}

	fst, err := genFirstSet(norm.Productions)
	if err != nil {
		return nil, err
	}

	flw, err := genFollowSet(norm.Productions, norm.Start, fst)
	if err != nil {
		return nil, err
	}

	tab, err := buildParsingTable(norm.Productions, fst, flw)
	if err != nil {
		return nil, err
	}

	return &CompiledGrammar{
		Grammar: norm,
		First:   fst,
		Follow:  flw,
		Table:   tab,
	}, nil
}
