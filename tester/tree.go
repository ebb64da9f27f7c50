package tester

import (
	"fmt"
	"strings"
)

// Tree is the expected-output half of a test case: a parenthesized
// s-expression where a branch is "(Name child...)" and a leaf is a
// single-quoted literal, e.g. "(E (T (F 'n')) '+' (T (F 'n')))". It
// mirrors the shape of driver.Node without depending on that package,
// so a test file can be written and read independently of the driver.
type Tree struct {
	Name     string // set for a branch
	Literal  string // set for a leaf
	Children []*Tree
}

func (t *Tree) isLeaf() bool {
	return t.Name == "" && t.Children == nil
}

func (t *Tree) String() string {
	if t.isLeaf() {
		return "'" + t.Literal + "'"
	}
	parts := make([]string, len(t.Children))
	for i, c := range t.Children {
		parts[i] = c.String()
	}
	if len(parts) == 0 {
		return "(" + t.Name + ")"
	}
	return "(" + t.Name + " " + strings.Join(parts, " ") + ")"
}

// treeParser reads the s-expression tree syntax described above.
type treeParser struct {
	src string
	pos int
}

func parseTree(src string) (*Tree, error) {
	p := &treeParser{src: src}
	p.skipSpace()
	t, err := p.parseNode()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos != len(p.src) {
		return nil, fmt.Errorf("unexpected trailing text in tree: %q", p.src[p.pos:])
	}
	return t, nil
}

func (p *treeParser) skipSpace() {
	for p.pos < len(p.src) && isSpace(p.src[p.pos]) {
		p.pos++
	}
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

func (p *treeParser) parseNode() (*Tree, error) {
	p.skipSpace()
	if p.pos >= len(p.src) {
		return nil, fmt.Errorf("unexpected end of tree")
	}
	switch p.src[p.pos] {
	case '\'':
		return p.parseLiteral()
	case '(':
		return p.parseBranch()
	default:
		return nil, fmt.Errorf("unexpected character %q in tree", p.src[p.pos])
	}
}

func (p *treeParser) parseLiteral() (*Tree, error) {
	p.pos++ // opening quote
	start := p.pos
	for p.pos < len(p.src) && p.src[p.pos] != '\'' {
		p.pos++
	}
	if p.pos >= len(p.src) {
		return nil, fmt.Errorf("unterminated literal in tree")
	}
	lit := p.src[start:p.pos]
	p.pos++ // closing quote
	return &Tree{Literal: lit}, nil
}

func (p *treeParser) parseBranch() (*Tree, error) {
	p.pos++ // "("
	p.skipSpace()
	start := p.pos
	for p.pos < len(p.src) && !isSpace(p.src[p.pos]) && p.src[p.pos] != ')' && p.src[p.pos] != '(' {
		p.pos++
	}
	if p.pos == start {
		return nil, fmt.Errorf("expected a nonterminal name after '('")
	}
	name := p.src[start:p.pos]

	var children []*Tree
	for {
		p.skipSpace()
		if p.pos >= len(p.src) {
			return nil, fmt.Errorf("unterminated branch %q", name)
		}
		if p.src[p.pos] == ')' {
			p.pos++
			return &Tree{Name: name, Children: children}, nil
		}
		child, err := p.parseNode()
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}
}

// TreeDiff describes one point of disagreement between an expected and
// an actual tree, identified by the slash-separated path from the root.
type TreeDiff struct {
	Path    string
	Message string
}

// DiffTree compares the actual tree the driver produced against the
// expected tree read from a test case, returning every disagreement
// found (not just the first).
func DiffTree(actual, expected *Tree) []*TreeDiff {
	var diffs []*TreeDiff
	diffNode(actual, expected, "root", &diffs)
	return diffs
}

func diffNode(actual, expected *Tree, path string, diffs *[]*TreeDiff) {
	if expected.isLeaf() != actual.isLeaf() {
		*diffs = append(*diffs, &TreeDiff{Path: path, Message: fmt.Sprintf("expected %v, got %v", expected, actual)})
		return
	}
	if expected.isLeaf() {
		if expected.Literal != actual.Literal {
			*diffs = append(*diffs, &TreeDiff{Path: path, Message: fmt.Sprintf("expected literal %q, got %q", expected.Literal, actual.Literal)})
		}
		return
	}
	if expected.Name != actual.Name {
		*diffs = append(*diffs, &TreeDiff{Path: path, Message: fmt.Sprintf("expected nonterminal %v, got %v", expected.Name, actual.Name)})
	}
	if len(expected.Children) != len(actual.Children) {
		*diffs = append(*diffs, &TreeDiff{Path: path, Message: fmt.Sprintf("expected %v children, got %v", len(expected.Children), len(actual.Children))})
		return
	}
	for i := range expected.Children {
		diffNode(actual.Children[i], expected.Children[i], fmt.Sprintf("%v/%v[%v]", path, expected.Children[i].label(), i), diffs)
	}
}

func (t *Tree) label() string {
	if t.isLeaf() {
		return t.Literal
	}
	return t.Name
}
