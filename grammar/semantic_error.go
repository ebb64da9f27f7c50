package grammar

import "fmt"

// SemErrKind classifies a SemanticError. Normalize raises only
// SemErrUndefinedNonterminal; a parse-table conflict is reported as a
// *ConflictError, not as a SemanticError.
type SemErrKind int

const (
	SemErrUndefinedNonterminal SemErrKind = iota
	SemErrConflict
)

// SemanticError reports a problem with a grammar itself, detected
// before any parser callable is produced: generation errors are
// returned before the driver ever runs.
type SemanticError struct {
	Kind    SemErrKind
	Detail  string
	Message string
}

func (e *SemanticError) Error() string {
	return e.Message
}

// ConflictError reports a non-LL(1) grammar: building the parse table
// found more than one production for some (nonterminal, lookahead)
// cell. It names the nonterminal, the lookahead, and the conflicting
// production numbers so the grammar author can find the ambiguity.
type ConflictError struct {
	Nonterminal string
	Lookahead   string
	Productions []int
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("non-LL(1) grammar: nonterminal %v has more than one production for lookahead %q (productions %v)",
		e.Nonterminal, e.Lookahead, e.Productions)
}
