package ebnf

import "fmt"

// Parse reads the grammar-file syntax and returns the EBNF Grammar it
// describes, or a *SyntaxError (a *LexError for a malformed lexeme).
func Parse(src string) (*Grammar, error) {
	p := &parser{lex: newLexer(src)}
	if err := p.advance(); err != nil {
		return nil, err
	}

	g := NewGrammar()
	for p.tok.kind != tokenKindEOF {
		name, rhs, err := p.parseRule()
		if err != nil {
			return nil, err
		}
		// A rule's top-level alternatives ("A = x | y ;") are distinct
		// productions for A, not a nested Alternation expression - that
		// form is reserved for alternation used as a subexpression, e.g.
		// inside "( x | y )".
		if rhs.Kind == KindAlternation {
			for _, alt := range rhs.Children {
				g.AddRule(name, alt)
			}
		} else {
			g.AddRule(name, rhs)
		}
	}
	return g, nil
}

// SyntaxError reports malformed EBNF grammar syntax: an unexpected
// token where a specific lexeme (or set of lexemes) was required.
type SyntaxError struct {
	Row, Col int
	Message  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%v:%v: syntax error: %v", e.Row+1, e.Col+1, e.Message)
}

type parser struct {
	lex *lexer
	tok *token
}

func (p *parser) advance() error {
	tok, err := p.lex.next()
	if err != nil {
		return err
	}
	p.tok = tok
	return nil
}

func (p *parser) expect(kind tokenKind, what string) (*token, error) {
	if p.tok.kind != kind {
		return nil, p.unexpected(what)
	}
	tok := p.tok
	if err := p.advance(); err != nil {
		return nil, err
	}
	return tok, nil
}

func (p *parser) unexpected(want string) error {
	got := p.tok.text
	if p.tok.kind == tokenKindEOF {
		got = "<eof>"
	}
	return &SyntaxError{
		Row:     p.tok.row,
		Col:     p.tok.col,
		Message: fmt.Sprintf("expected %v, found %q", want, got),
	}
}

// rule = Nonterminal "=" alternation ";" ;
func (p *parser) parseRule() (string, *Expr, error) {
	nameTok, err := p.expect(tokenKindNonterminal, "a nonterminal")
	if err != nil {
		return "", nil, err
	}
	if _, err := p.expect(tokenKindEqual, `"="`); err != nil {
		return "", nil, err
	}
	rhs, err := p.parseAlternation()
	if err != nil {
		return "", nil, err
	}
	if _, err := p.expect(tokenKindSemicolon, `";"`); err != nil {
		return "", nil, err
	}
	return nameTok.text, rhs, nil
}

// alternation = concatenation { "|" concatenation } ;
func (p *parser) parseAlternation() (*Expr, error) {
	first, err := p.parseConcatenation()
	if err != nil {
		return nil, err
	}
	if p.tok.kind != tokenKindOr {
		return first, nil
	}
	alts := []*Expr{first}
	for p.tok.kind == tokenKindOr {
		if err := p.advance(); err != nil {
			return nil, err
		}
		next, err := p.parseConcatenation()
		if err != nil {
			return nil, err
		}
		alts = append(alts, next)
	}
	return Alt(alts...), nil
}

func startsTerm(k tokenKind) bool {
	switch k {
	case tokenKindLParen, tokenKindLBracket, tokenKindLBrace,
		tokenKindNonterminal, tokenKindTerminal, tokenKindEpsilon:
		return true
	default:
		return false
	}
}

// concatenation = factor { factor } ;
// An empty concatenation (no factor before "|", ";", ")", "]", or
// "}") is an implicit empty alternative and is equivalent to ε.
func (p *parser) parseConcatenation() (*Expr, error) {
	if !startsTerm(p.tok.kind) {
		return Eps(), nil
	}
	first, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	if !startsTerm(p.tok.kind) {
		return first, nil
	}
	cs := []*Expr{first}
	for startsTerm(p.tok.kind) {
		next, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		cs = append(cs, next)
	}
	return Concat(cs...), nil
}

// factor = term [ "*" | "+" ] ;
func (p *parser) parseFactor() (*Expr, error) {
	term, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	switch p.tok.kind {
	case tokenKindAsterisk:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return Iteration(term), nil
	case tokenKindPlus:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return OneOrMore(term), nil
	default:
		return term, nil
	}
}

// term = "(" alternation ")" | "[" alternation "]"
//      | "{" alternation "}" | Nonterminal | Terminal | "ε" ;
func (p *parser) parseTerm() (*Expr, error) {
	switch p.tok.kind {
	case tokenKindLParen:
		if err := p.advance(); err != nil {
			return nil, err
		}
		e, err := p.parseAlternation()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokenKindRParen, `")"`); err != nil {
			return nil, err
		}
		return e, nil
	case tokenKindLBracket:
		if err := p.advance(); err != nil {
			return nil, err
		}
		e, err := p.parseAlternation()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokenKindRBracket, `"]"`); err != nil {
			return nil, err
		}
		return Optional(e), nil
	case tokenKindLBrace:
		if err := p.advance(); err != nil {
			return nil, err
		}
		e, err := p.parseAlternation()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokenKindRBrace, `"}"`); err != nil {
			return nil, err
		}
		return Iteration(e), nil
	case tokenKindNonterminal:
		tok := p.tok
		if err := p.advance(); err != nil {
			return nil, err
		}
		return Non(tok.text), nil
	case tokenKindTerminal:
		tok := p.tok
		if err := p.advance(); err != nil {
			return nil, err
		}
		return Term(tok.text), nil
	case tokenKindEpsilon:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return Eps(), nil
	default:
		return nil, p.unexpected(`a term ("(", "[", "{", a nonterminal, a terminal, or "ε")`)
	}
}
