package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/kesuzu/llgram/grammar"
	"github.com/kesuzu/llgram/tester"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:     "test <grammar file> <test file or directory>",
		Short:   "Run a grammar's test cases",
		Example: `  llgram test grammar.ebnf testdata`,
		Args:    cobra.ExactArgs(2),
		RunE:    runTest,
	}
	rootCmd.AddCommand(cmd)
}

func runTest(cmd *cobra.Command, args []string) error {
	g, err := readGrammar(args[0:1])
	if err != nil {
		return fmt.Errorf("cannot read the grammar: %w", err)
	}
	cg, err := grammar.Compile(g)
	if err != nil {
		return fmt.Errorf("cannot compile the grammar: %w", err)
	}

	cs := tester.ListTestCases(args[1])
	errOccurred := false
	for _, c := range cs {
		if c.Error != nil {
			fmt.Fprintf(os.Stderr, "failed to read a test case: %v\n%v\n", c.FilePath, c.Error)
			errOccurred = true
		}
	}
	if errOccurred {
		return errors.New("cannot run the tests")
	}

	t := &tester.Tester{
		Grammar:   cg,
		Terminals: cg.Grammar.Symbols.Terminals(),
		Cases:     cs,
	}
	rs := t.Run()
	failed := false
	for _, r := range rs {
		fmt.Fprintln(os.Stdout, r)
		if r.Error != nil {
			failed = true
		}
	}
	if failed {
		return errors.New("test failed")
	}
	return nil
}
