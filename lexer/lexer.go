// Package lexer implements a longest-match tokenizer: given an input
// string and a terminal alphabet, it yields a token stream by greedily
// matching the longest declared literal that prefixes the remaining
// input.
package lexer

import "sort"

// Token is one matched terminal literal, carrying the position of its
// first byte.
type Token struct {
	Literal string
	Line    int
	Column  int
	Offset  int
}

// Lexer holds the terminal alphabet (ordered for longest-match
// scanning) and the current scan position.
type Lexer struct {
	alphabet []string
	src      string
	offset   int
	line     int
	column   int
}

// New builds a Lexer over src using the terminal alphabet terminals,
// given in declaration order. Matching tries literals from longest to
// shortest; among equal-length literals, declaration order (as given)
// breaks ties.
func New(src string, terminals []string) *Lexer {
	alphabet := make([]string, len(terminals))
	copy(alphabet, terminals)
	sort.SliceStable(alphabet, func(i, j int) bool {
		return len(alphabet[i]) > len(alphabet[j])
	})
	return &Lexer{alphabet: alphabet, src: src}
}

// Next returns the next token, or ok=false when no literal matches at
// the current position: the stream simply ends.
func (l *Lexer) Next() (Token, bool) {
	if l.offset >= len(l.src) {
		return Token{}, false
	}

	rest := l.src[l.offset:]
	for _, lit := range l.alphabet {
		if lit == "" {
			continue
		}
		if len(lit) > len(rest) {
			continue
		}
		if rest[:len(lit)] != lit {
			continue
		}

		tok := Token{Literal: lit, Line: l.line, Column: l.column, Offset: l.offset}
		l.advance(lit)
		return tok, true
	}

	return Token{}, false
}

// AtEnd reports whether the entire input has been consumed. When Next
// returns ok=false and AtEnd is false, no literal matched a nonempty
// remaining input: a tokenization-stop condition.
func (l *Lexer) AtEnd() bool {
	return l.offset >= len(l.src)
}

// Offset, Line, and Column report the lexer's current position, used
// to point a tokenization-stop diagnostic at the first unmatched byte.
func (l *Lexer) Offset() int { return l.offset }
func (l *Lexer) Line() int   { return l.line }
func (l *Lexer) Column() int { return l.column }

func (l *Lexer) advance(lit string) {
	for i := 0; i < len(lit); i++ {
		if lit[i] == '\n' {
			l.line++
			l.column = 0
		} else {
			l.column++
		}
	}
	l.offset += len(lit)
}
