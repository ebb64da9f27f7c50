package tester

import (
	"strings"
	"testing"

	"github.com/kesuzu/llgram/ebnf"
	"github.com/kesuzu/llgram/grammar"
)

func compile(t *testing.T, src string) *grammar.CompiledGrammar {
	t.Helper()
	g, err := ebnf.Parse(src)
	if err != nil {
		t.Fatalf("ebnf.Parse: %v", err)
	}
	cg, err := grammar.Compile(g)
	if err != nil {
		t.Fatalf("grammar.Compile: %v", err)
	}
	return cg
}

func TestTesterRunPassingCase(t *testing.T) {
	cg := compile(t, `E = T { "+" T } ; T = F { "*" F } ; F = "(" E ")" | "n" ;`)
	c, err := ParseTestCase(strings.NewReader("arithmetic\n---\nn+n*n\n---\n(E (T (F 'n')) '+' (T (F 'n') '*' (F 'n')))"))
	if err != nil {
		t.Fatalf("ParseTestCase: %v", err)
	}

	tester := &Tester{
		Grammar:   cg,
		Terminals: cg.Grammar.Symbols.Terminals(),
		Cases:     []*TestCaseWithMetadata{{TestCase: c, FilePath: "arithmetic.txt"}},
	}
	rs := tester.Run()
	if len(rs) != 1 {
		t.Fatalf("expected 1 result, got %v", len(rs))
	}
	if rs[0].Error != nil {
		t.Fatalf("unexpected failure: %v", rs[0])
	}
}

func TestTesterRunFailingCaseReportsDiff(t *testing.T) {
	cg := compile(t, `E = T { "+" T } ; T = F { "*" F } ; F = "(" E ")" | "n" ;`)
	c, err := ParseTestCase(strings.NewReader("arithmetic\n---\nn+n\n---\n(E (T (F 'n')) '+' (T (F 'n') '*' (F 'n')))"))
	if err != nil {
		t.Fatalf("ParseTestCase: %v", err)
	}

	tester := &Tester{
		Grammar:   cg,
		Terminals: cg.Grammar.Symbols.Terminals(),
		Cases:     []*TestCaseWithMetadata{{TestCase: c, FilePath: "arithmetic.txt"}},
	}
	rs := tester.Run()
	if rs[0].Error == nil {
		t.Fatal("expected the mismatched tree to be reported as a failure")
	}
	if len(rs[0].Diffs) == 0 {
		t.Fatal("expected at least one diff describing the mismatch")
	}
}

func TestTesterRunParseErrorIsReported(t *testing.T) {
	cg := compile(t, `E = T { "+" T } ; T = F { "*" F } ; F = "(" E ")" | "n" ;`)
	c, err := ParseTestCase(strings.NewReader("bad-input\n---\nn+\n---\n(E (T (F 'n')))"))
	if err != nil {
		t.Fatalf("ParseTestCase: %v", err)
	}

	tester := &Tester{
		Grammar:   cg,
		Terminals: cg.Grammar.Symbols.Terminals(),
		Cases:     []*TestCaseWithMetadata{{TestCase: c, FilePath: "bad-input.txt"}},
	}
	rs := tester.Run()
	if rs[0].Error == nil {
		t.Fatal("expected a parse error for trailing '+' with no right operand")
	}
	if len(rs[0].Diffs) != 0 {
		t.Fatal("did not expect a tree diff when the parse itself failed")
	}
}
