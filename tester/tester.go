// Package tester runs grammar test cases (a source snippet paired
// with an expected parse tree) against a compiled grammar, reporting
// pass/fail with a tree diff on mismatch.
package tester

import (
	"fmt"
	"strings"

	"github.com/kesuzu/llgram/driver"
	"github.com/kesuzu/llgram/grammar"
)

// TestResult is the outcome of running one TestCase.
type TestResult struct {
	TestCasePath string
	Error        error
	Diffs        []*TreeDiff
}

func (r *TestResult) String() string {
	if r.Error == nil {
		return fmt.Sprintf("PASS %v", r.TestCasePath)
	}
	const indent = "    "
	msgLines := strings.Split(r.Error.Error(), "\n")
	msg := fmt.Sprintf("FAIL %v:\n%v%v", r.TestCasePath, indent, strings.Join(msgLines, "\n"+indent))
	if len(r.Diffs) == 0 {
		return msg
	}
	var diffLines []string
	for _, d := range r.Diffs {
		diffLines = append(diffLines, fmt.Sprintf("%v: %v", d.Path, d.Message))
	}
	return fmt.Sprintf("%v\n%v%v", msg, indent, strings.Join(diffLines, "\n"+indent))
}

// Tester runs every case in Cases against Grammar.
type Tester struct {
	Grammar   *grammar.CompiledGrammar
	Terminals []string
	Cases     []*TestCaseWithMetadata
}

// Run executes every test case and returns one TestResult per case, in
// order.
func (t *Tester) Run() []*TestResult {
	rs := make([]*TestResult, len(t.Cases))
	for i, c := range t.Cases {
		rs[i] = t.runOne(c)
	}
	return rs
}

func (t *Tester) runOne(c *TestCaseWithMetadata) *TestResult {
	if c.Error != nil {
		return &TestResult{TestCasePath: c.FilePath, Error: c.Error}
	}

	root, err := driver.Parse(t.Grammar, c.TestCase.Source, t.Terminals)
	if err != nil {
		return &TestResult{TestCasePath: c.FilePath, Error: err}
	}

	actual := nodeToTree(root)
	diffs := DiffTree(actual, c.TestCase.Output)
	if len(diffs) > 0 {
		return &TestResult{TestCasePath: c.FilePath, Error: fmt.Errorf("output mismatch"), Diffs: diffs}
	}
	return &TestResult{TestCasePath: c.FilePath}
}

func nodeToTree(n *driver.Node) *Tree {
	if n.Kind == driver.NodeLeaf {
		return &Tree{Literal: n.Literal}
	}
	children := make([]*Tree, len(n.Children))
	for i, c := range n.Children {
		children[i] = nodeToTree(c)
	}
	return &Tree{Name: n.Name, Children: children}
}
