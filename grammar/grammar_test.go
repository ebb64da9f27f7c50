package grammar

import "testing"

func TestCompileArithmetic(t *testing.T) {
	g := mustParse(t, `E = T { "+" T } ; T = F { "*" F } ; F = "(" E ")" | "n" ;`)
	cg, err := Compile(g)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if cg.Grammar == nil || cg.First == nil || cg.Follow == nil || cg.Table == nil {
		t.Fatal("expected every field of CompiledGrammar to be populated")
	}
	e := symOf("E")
	if _, ok := cg.Table.Lookup(e, "n"); !ok {
		t.Fatal("expected table[E][\"n\"] to be defined")
	}
}

func TestCompileRejectsUndefinedNonterminal(t *testing.T) {
	g := mustParse(t, `S = A ;`)
	if _, err := Compile(g); err == nil {
		t.Fatal("expected an error for an undefined nonterminal")
	}
}

func TestCompileRejectsAmbiguousGrammar(t *testing.T) {
	g := mustParse(t, `A = "x" | "x" "y" ;`)
	_, err := Compile(g)
	if err == nil {
		t.Fatal("expected a non-LL(1) conflict error")
	}
	ce, ok := err.(*ConflictError)
	if !ok {
		t.Fatalf("expected *ConflictError, got %T", err)
	}
	if ce.Nonterminal != "A" {
		t.Fatalf("expected conflict on A, got %v", ce.Nonterminal)
	}
}

func TestCompileUsesTopLevelAlternativesDirectlyWithoutAHiddenNonterminal(t *testing.T) {
	g := mustParse(t, `F = "(" "n" ")" | "n" ;`)
	cg, err := Compile(g)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	prods := cg.Grammar.Productions.ByLHS(symOf("F"))
	if len(prods) != 2 {
		t.Fatalf("expected 2 direct productions for F, got %v", len(prods))
	}
	for _, prod := range prods {
		for _, sym := range prod.RHS {
			if sym.IsNonterminal() {
				t.Fatalf("did not expect a hidden nonterminal in F's top-level alternatives, got %v", prod)
			}
		}
	}
}
