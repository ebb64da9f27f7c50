package driver

import (
	"fmt"
	"strings"

	verr "github.com/kesuzu/llgram/error"
	"github.com/kesuzu/llgram/grammar"
	"github.com/kesuzu/llgram/lexer"
	"github.com/kesuzu/llgram/symbol"
)

func literalDisplay(lit string) string {
	if lit == symbol.EOF {
		return "<eof>"
	}
	return lit
}

func sourceLine(src string, line int) string {
	lines := strings.Split(src, "\n")
	if line < 0 || line >= len(lines) {
		return ""
	}
	return lines[line]
}

func unexpectedTokenError(tab *grammar.ParsingTable, nt symbol.Symbol, la lookahead, src string) error {
	expected := tab.ExpectedLiterals(nt)
	disp := make([]string, len(expected))
	for i, lit := range expected {
		disp[i] = literalDisplay(lit)
	}
	return &verr.ParseError{
		Kind:     verr.KindUnexpectedToken,
		Line:     la.line,
		Column:   la.column,
		Source:   sourceLine(src, la.line),
		Observed: literalDisplay(la.literal),
		Expected: expected,
		Message: fmt.Sprintf("unexpected token %v while parsing %v, expected one of [%v]",
			literalDisplay(la.literal), nt.Text(), strings.Join(disp, ", ")),
	}
}

func expectedTerminalError(want string, la lookahead, src string) error {
	return &verr.ParseError{
		Kind:     verr.KindExpectedTerminal,
		Line:     la.line,
		Column:   la.column,
		Source:   sourceLine(src, la.line),
		Observed: literalDisplay(la.literal),
		Expected: []string{want},
		Message:  fmt.Sprintf("expected %v, found %v", literalDisplay(want), literalDisplay(la.literal)),
	}
}

func trailingInputError(la lookahead, src string) error {
	return &verr.ParseError{
		Kind:     verr.KindTrailingInput,
		Line:     la.line,
		Column:   la.column,
		Source:   sourceLine(src, la.line),
		Observed: literalDisplay(la.literal),
		Message:  "trailing input after a complete parse",
	}
}

func tokenizationStopError(lx *lexer.Lexer, src string) error {
	return &verr.ParseError{
		Kind:    verr.KindTokenizationStop,
		Line:    lx.Line(),
		Column:  lx.Column(),
		Source:  sourceLine(src, lx.Line()),
		Message: "no terminal literal matches the remaining input",
	}
}

func internalInvariantError(msg string, la lookahead) error {
	return &verr.ParseError{
		Kind:    verr.KindInternalInvariant,
		Line:    la.line,
		Column:  la.column,
		Message: fmt.Sprintf("internal invariant violation: %v", msg),
	}
}
