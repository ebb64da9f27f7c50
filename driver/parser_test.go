package driver_test

import (
	"strings"
	"testing"

	"github.com/kesuzu/llgram/driver"
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

func parse(t *testing.T, cg *grammar.CompiledGrammar, input string) (*driver.Node, error) {
	t.Helper()
	return driver.Parse(cg, input, cg.Grammar.Symbols.Terminals())
}

func TestArithmetic(t *testing.T) {
	cg := compile(t, `E = T { "+" T } ; T = F { "*" F } ; F = "(" E ")" | "n" ;`)

	n, err := parse(t, cg, "n+n*n")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if n.Name != "E" {
		t.Fatalf("expected root E, got %v", n.Name)
	}
	leaves := n.Leaves()
	want := []string{"n", "+", "n", "*", "n"}
	if strings.Join(leaves, "") != strings.Join(want, "") {
		t.Fatalf("expected leaves %v, got %v", want, leaves)
	}
}

func TestOptionalTail(t *testing.T) {
	cg := compile(t, `S = "a" [ "b" ] "c" ;`)

	for _, in := range []string{"ac", "abc"} {
		if _, err := parse(t, cg, in); err != nil {
			t.Fatalf("parse(%q): unexpected error: %v", in, err)
		}
	}

	if _, err := parse(t, cg, "abbc"); err == nil {
		t.Fatal("expected parse error for \"abbc\"")
	}
}

func TestIteration(t *testing.T) {
	cg := compile(t, `L = "x" { "," "x" } ;`)

	if _, err := parse(t, cg, "x,x,x"); err != nil {
		t.Fatalf("parse(x,x,x): unexpected error: %v", err)
	}
	if _, err := parse(t, cg, "x,"); err == nil {
		t.Fatal("expected parse error for \"x,\"")
	}
	if _, err := parse(t, cg, ",x"); err == nil {
		t.Fatal("expected parse error for \",x\"")
	}
}

func TestOneOrMore(t *testing.T) {
	cg := compile(t, `D = ( "d" )+ ;`)

	if _, err := parse(t, cg, "d"); err != nil {
		t.Fatalf("parse(d): unexpected error: %v", err)
	}
	if _, err := parse(t, cg, "dd"); err != nil {
		t.Fatalf("parse(dd): unexpected error: %v", err)
	}
	if _, err := parse(t, cg, ""); err == nil {
		t.Fatal("expected parse error for empty input")
	}
}

func TestAmbiguityRejection(t *testing.T) {
	g, err := ebnf.Parse(`A = "x" | "x" "y" ;`)
	if err != nil {
		t.Fatalf("ebnf.Parse: %v", err)
	}
	if _, err := grammar.Compile(g); err == nil {
		t.Fatal("expected a non-LL(1) conflict error")
	}
}

func TestHiddenNonterminalsElided(t *testing.T) {
	cg := compile(t, `S = "a" [ "b" ] ;`)

	n, err := parse(t, cg, "ab")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if n.Name != "S" {
		t.Fatalf("expected root S, got %v", n.Name)
	}
	for _, c := range n.Children {
		if c.Kind == driver.NodeBranch && strings.HasPrefix(c.Name, "_") {
			t.Fatalf("found a hidden-nonterminal branch in the output tree: %v", c.Name)
		}
	}
}
