package ebnf

import "testing"

func collectTokens(t *testing.T, src string) []*token {
	t.Helper()
	l := newLexer(src)
	var toks []*token
	for {
		tok, err := l.next()
		if err != nil {
			t.Fatalf("next: %v", err)
		}
		toks = append(toks, tok)
		if tok.kind == tokenKindEOF {
			return toks
		}
	}
}

func TestLexerPunctuationAndIdentifiers(t *testing.T) {
	toks := collectTokens(t, `S = "a" [ Rest ] ;`)
	want := []tokenKind{
		tokenKindNonterminal, tokenKindEqual, tokenKindTerminal,
		tokenKindLBracket, tokenKindNonterminal, tokenKindRBracket,
		tokenKindSemicolon, tokenKindEOF,
	}
	if len(toks) != len(want) {
		t.Fatalf("expected %v tokens, got %v", len(want), len(toks))
	}
	for i, k := range want {
		if toks[i].kind != k {
			t.Fatalf("token %v: expected kind %v, got %v (%q)", i, k, toks[i].kind, toks[i].text)
		}
	}
	if toks[0].text != "S" {
		t.Fatalf("expected first token text 'S', got %q", toks[0].text)
	}
	if toks[2].text != "a" {
		t.Fatalf("expected terminal text 'a', got %q", toks[2].text)
	}
}

func TestLexerEpsilonGlyph(t *testing.T) {
	toks := collectTokens(t, `S = ε ;`)
	if toks[2].kind != tokenKindEpsilon {
		t.Fatalf("expected an epsilon token, got kind %v", toks[2].kind)
	}
}

func TestLexerTracksRowAndColumn(t *testing.T) {
	toks := collectTokens(t, "S = \"a\" ;\nT = \"b\" ;")
	var tTok *token
	for _, tok := range toks {
		if tok.kind == tokenKindNonterminal && tok.text == "T" {
			tTok = tok
		}
	}
	if tTok == nil {
		t.Fatal("expected to find nonterminal T")
	}
	if tTok.row != 1 || tTok.col != 0 {
		t.Fatalf("expected T at row 1, col 0, got row %v col %v", tTok.row, tTok.col)
	}
}

func TestLexerUnterminatedTerminal(t *testing.T) {
	l := newLexer(`S = "a ;`)
	for {
		tok, err := l.next()
		if err != nil {
			if _, ok := err.(*LexError); !ok {
				t.Fatalf("expected a *LexError, got %T", err)
			}
			return
		}
		if tok.kind == tokenKindEOF {
			t.Fatal("expected an unterminated-terminal error before EOF")
		}
	}
}

func TestLexerRejectsUnknownCharacter(t *testing.T) {
	l := newLexer(`S = # ;`)
	for i := 0; i < 2; i++ {
		if _, err := l.next(); err != nil {
			t.Fatalf("unexpected error lexing prefix: %v", err)
		}
	}
	_, err := l.next()
	if err == nil {
		t.Fatal("expected a lex error for '#'")
	}
	if _, ok := err.(*LexError); !ok {
		t.Fatalf("expected a *LexError, got %T", err)
	}
}
