package error

import (
	"strings"
	"testing"
)

func TestParseErrorIncludesSourceAndCaret(t *testing.T) {
	err := &ParseError{
		Kind:     KindUnexpectedToken,
		Line:     0,
		Column:   2,
		Source:   "n+n",
		Observed: "+",
		Expected: []string{"n", "("},
		Message:  "unexpected token +",
	}
	msg := err.Error()
	lines := strings.Split(msg, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected a 3-line diagnostic (header, source, caret), got %v: %q", len(lines), msg)
	}
	if lines[1] != "n+n" {
		t.Fatalf("expected the source line to be echoed verbatim, got %q", lines[1])
	}
	if lines[2] != "  ^" {
		t.Fatalf("expected the caret under column 2, got %q", lines[2])
	}
}

func TestParseErrorCaretClampsToLineBounds(t *testing.T) {
	err := &ParseError{Kind: KindTokenizationStop, Line: 0, Column: 99, Source: "ab", Message: "stop"}
	msg := err.Error()
	lines := strings.Split(msg, "\n")
	if lines[2] != "  ^" {
		t.Fatalf("expected the caret clamped to the line length, got %q", lines[2])
	}
}

func TestParseErrorWithoutSourceOmitsCaretLines(t *testing.T) {
	err := &ParseError{Kind: KindInternalInvariant, Line: 1, Column: 0, Message: "unreachable"}
	msg := err.Error()
	if strings.Contains(msg, "\n") {
		t.Fatalf("expected a single-line diagnostic when no source line is available, got %q", msg)
	}
}
