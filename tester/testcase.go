package tester

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// TestCase is one grammar test case read from a test-case file: a name, a
// source string to run through the tokenizer/parser, and the tree the
// parse is expected to produce. The file syntax is three sections
// separated by a "---" line on its own:
//
//	<name>
//	---
//	<source text>
//	---
//	<s-expression tree>
type TestCase struct {
	Name   string
	Source string
	Output *Tree
}

const sectionSep = "---"

// ParseTestCase reads one TestCase from r.
func ParseTestCase(r io.Reader) (*TestCase, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	sections := strings.Split(string(raw), "\n"+sectionSep+"\n")
	if len(sections) != 3 {
		return nil, fmt.Errorf("expected 3 sections separated by %q lines, found %v", sectionSep, len(sections))
	}
	name := strings.TrimSpace(sections[0])
	source := strings.Trim(sections[1], "\n")
	tree, err := parseTree(strings.TrimSpace(sections[2]))
	if err != nil {
		return nil, fmt.Errorf("parsing expected tree: %w", err)
	}
	return &TestCase{Name: name, Source: source, Output: tree}, nil
}

// TestCaseWithMetadata pairs a parsed TestCase with the file path it
// came from, or the error encountered while reading/parsing it.
type TestCaseWithMetadata struct {
	TestCase *TestCase
	FilePath string
	Error    error
}

// ListTestCases reads every test case under testPath: testPath itself
// if it is a single file, or every file beneath it if it is a
// directory.
func ListTestCases(testPath string) []*TestCaseWithMetadata {
	fi, err := os.Stat(testPath)
	if err != nil {
		return []*TestCaseWithMetadata{{FilePath: testPath, Error: err}}
	}
	if !fi.IsDir() {
		c, err := parseTestCaseFile(testPath)
		return []*TestCaseWithMetadata{{TestCase: c, FilePath: testPath, Error: err}}
	}

	es, err := os.ReadDir(testPath)
	if err != nil {
		return []*TestCaseWithMetadata{{FilePath: testPath, Error: err}}
	}
	var cases []*TestCaseWithMetadata
	for _, e := range es {
		cases = append(cases, ListTestCases(filepath.Join(testPath, e.Name()))...)
	}
	return cases
}

func parseTestCaseFile(path string) (*TestCase, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseTestCase(f)
}
