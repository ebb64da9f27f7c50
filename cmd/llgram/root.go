package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "llgram",
	Short: "Generate and run LL(1) parsers from an EBNF grammar",
	Long: `llgram provides four features:
- Compiles an EBNF grammar into a portable LL(1) parsing table.
- Parses a text stream against a compiled grammar.
- Runs a grammar's test cases and reports pass/fail with a tree diff.
- Describes a grammar's productions, FIRST/FOLLOW sets, and parsing table.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return err
	}
	return nil
}
