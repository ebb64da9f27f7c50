// Package driver implements a predictive parser: a stack automaton
// with two parallel stacks (symbols expected, tree nodes in progress)
// that runs the LL(1) table a *grammar.CompiledGrammar produces over
// a literal-prefix token stream.
package driver

import (
	"strings"

	"github.com/kesuzu/llgram/grammar"
	"github.com/kesuzu/llgram/lexer"
	"github.com/kesuzu/llgram/symbol"
)

type stackItemKind int

const (
	itemExpectNonterm stackItemKind = iota
	itemExpectTerm
	itemExpectEpsilon
	itemCloseBranch
)

type stackItem struct {
	kind    stackItemKind
	nt      symbol.Symbol
	literal string
}

func toStackItem(sym symbol.Symbol) stackItem {
	switch {
	case sym.IsTerminal():
		return stackItem{kind: itemExpectTerm, literal: sym.Text()}
	case sym.IsNonterminal():
		return stackItem{kind: itemExpectNonterm, nt: sym}
	default:
		return stackItem{kind: itemExpectEpsilon}
	}
}

// lookahead is the driver's view of the current token: either a real
// match or the synthetic end-of-input marker (literal == symbol.EOF).
type lookahead struct {
	literal string
	line    int
	column  int
}

func isHidden(name string) bool {
	return strings.HasPrefix(name, "_")
}

// Parse runs the driver over src using the LL(1) table and production
// set of a compiled grammar, tokenizing src with the given terminal
// alphabet (ordinarily grammar.Grammar.Symbols.Terminals()).
func Parse(cg *grammar.CompiledGrammar, src string, terminals []string) (*Node, error) {
	lx := lexer.New(src, terminals)

	la, err := nextLookahead(lx, src)
	if err != nil {
		return nil, err
	}

	symStack := []stackItem{{kind: itemExpectNonterm, nt: cg.Grammar.Start}}
	treeStack := []*Node{{Kind: NodeBranch, Name: "root"}}

	for len(symStack) > 0 {
		top := symStack[len(symStack)-1]
		symStack = symStack[:len(symStack)-1]

		switch top.kind {
		case itemExpectNonterm:
			prodNum, ok := cg.Table.Lookup(top.nt, la.literal)
			if !ok {
				return nil, unexpectedTokenError(cg.Table, top.nt, la, src)
			}
			prod := cg.Grammar.Productions.All()[prodNum]

			if !isHidden(top.nt.Text()) {
				symStack = append(symStack, stackItem{kind: itemCloseBranch})
				treeStack = append(treeStack, &Node{Kind: NodeBranch, Name: top.nt.Text(), Line: la.line, Column: la.column})
			}

			for i := len(prod.RHS) - 1; i >= 0; i-- {
				symStack = append(symStack, toStackItem(prod.RHS[i]))
			}

		case itemExpectTerm:
			if la.literal != top.literal {
				return nil, expectedTerminalError(top.literal, la, src)
			}
			branch := treeStack[len(treeStack)-1]
			branch.Children = append(branch.Children, &Node{Kind: NodeLeaf, Literal: la.literal, Line: la.line, Column: la.column})

			la, err = nextLookahead(lx, src)
			if err != nil {
				return nil, err
			}

		case itemExpectEpsilon:
			// no-op: present only to keep the stack encoding symmetric.

		case itemCloseBranch:
			if len(treeStack) < 2 {
				return nil, internalInvariantError("close-branch with no matching open branch", la)
			}
			closed := treeStack[len(treeStack)-1]
			treeStack = treeStack[:len(treeStack)-1]
			parent := treeStack[len(treeStack)-1]
			parent.Children = append(parent.Children, closed)
		}
	}

	if la.literal != symbol.EOF {
		return nil, trailingInputError(la, src)
	}
	if len(treeStack) != 1 {
		return nil, internalInvariantError("tree stack unbalanced at end of parse", la)
	}
	root := treeStack[0]
	if len(root.Children) != 1 {
		return nil, internalInvariantError("parse did not produce exactly one top-level node", la)
	}
	return root.Children[0], nil
}

func nextLookahead(lx *lexer.Lexer, src string) (lookahead, error) {
	tok, ok := lx.Next()
	if ok {
		return lookahead{literal: tok.Literal, line: tok.Line, column: tok.Column}, nil
	}
	if lx.AtEnd() {
		return lookahead{literal: symbol.EOF, line: lx.Line(), column: lx.Column()}, nil
	}
	return lookahead{}, tokenizationStopError(lx, src)
}
