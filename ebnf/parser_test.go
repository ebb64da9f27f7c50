package ebnf

import "testing"

func TestParseSimpleRule(t *testing.T) {
	g, err := Parse(`S = "a" "b" ;`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if g.Start != "S" {
		t.Fatalf("expected start S, got %v", g.Start)
	}
	rhss := g.Rules["S"]
	if len(rhss) != 1 {
		t.Fatalf("expected 1 rhs for S, got %v", len(rhss))
	}
	if rhss[0].Kind != KindConcat || len(rhss[0].Children) != 2 {
		t.Fatalf("expected a 2-element concat, got %v", rhss[0])
	}
}

func TestParseTopLevelAlternationProducesSeparateDirectRHSs(t *testing.T) {
	g, err := Parse(`F = "(" "n" ")" | "n" ;`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	rhss := g.Rules["F"]
	if len(rhss) != 2 {
		t.Fatalf("expected 2 direct alternatives for F, got %v", len(rhss))
	}
	if rhss[0].Kind != KindConcat {
		t.Fatalf("expected first alternative to be a concat, got %v", rhss[0].Kind)
	}
	if rhss[1].Kind != KindTerminal || rhss[1].Literal != "n" {
		t.Fatalf("expected second alternative to be the terminal \"n\", got %v", rhss[1])
	}
}

func TestParseNestedAlternationStaysNested(t *testing.T) {
	g, err := Parse(`S = "a" ( "b" | "c" ) ;`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	rhss := g.Rules["S"]
	if len(rhss) != 1 {
		t.Fatalf("expected 1 rhs for S, got %v", len(rhss))
	}
	concat := rhss[0]
	if concat.Kind != KindConcat || len(concat.Children) != 2 {
		t.Fatalf("expected a 2-element concat, got %v", concat)
	}
	if concat.Children[1].Kind != KindAlternation {
		t.Fatalf("expected the parenthesized alternation to stay nested, got %v", concat.Children[1].Kind)
	}
}

func TestParseOptionalIterationOneOrMore(t *testing.T) {
	g, err := Parse(`S = [ "a" ] { "b" } ( "c" )+ ;`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	concat := g.Rules["S"][0]
	if len(concat.Children) != 3 {
		t.Fatalf("expected 3 factors, got %v", len(concat.Children))
	}
	if concat.Children[0].Kind != KindOptional {
		t.Fatalf("expected an optional, got %v", concat.Children[0].Kind)
	}
	if concat.Children[1].Kind != KindIteration {
		t.Fatalf("expected an iteration, got %v", concat.Children[1].Kind)
	}
	if concat.Children[2].Kind != KindOneOrMore {
		t.Fatalf("expected a one-or-more, got %v", concat.Children[2].Kind)
	}
}

func TestParseEmptyAlternativeIsEpsilon(t *testing.T) {
	g, err := Parse(`S = "a" | ;`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	rhss := g.Rules["S"]
	if len(rhss) != 2 {
		t.Fatalf("expected 2 alternatives, got %v", len(rhss))
	}
	if rhss[1].Kind != KindEpsilon {
		t.Fatalf("expected the second alternative to be epsilon, got %v", rhss[1].Kind)
	}
}

func TestParseExplicitEpsilonGlyph(t *testing.T) {
	g, err := Parse(`S = ε ;`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if g.Rules["S"][0].Kind != KindEpsilon {
		t.Fatalf("expected an epsilon rhs, got %v", g.Rules["S"][0].Kind)
	}
}

func TestParseMultipleRulesPreserveOrder(t *testing.T) {
	g, err := Parse(`E = T ; T = "n" ;`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if g.Start != "E" {
		t.Fatalf("expected start E, got %v", g.Start)
	}
	if len(g.Order) != 2 || g.Order[0] != "E" || g.Order[1] != "T" {
		t.Fatalf("expected order [E T], got %v", g.Order)
	}
}

func TestParseSyntaxErrorReportsPosition(t *testing.T) {
	_, err := Parse(`S = "a" "b"`)
	if err == nil {
		t.Fatal("expected a syntax error for a missing semicolon")
	}
	se, ok := err.(*SyntaxError)
	if !ok {
		t.Fatalf("expected a *SyntaxError, got %T", err)
	}
	if se.Row != 0 {
		t.Fatalf("expected the error on row 0, got %v", se.Row)
	}
}

func TestParseRoundTripIdempotence(t *testing.T) {
	const src = `E = T { "+" T } ;
T = F { "*" F } ;
F = "(" E ")" | "n" ;
`
	g, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	printed := g.String()

	g2, err := Parse(printed)
	if err != nil {
		t.Fatalf("re-parsing the printed grammar failed: %v\ngrammar was:\n%v", err, printed)
	}
	if g2.String() != printed {
		t.Fatalf("round-trip was not idempotent:\nfirst:\n%v\nsecond:\n%v", printed, g2.String())
	}
}
