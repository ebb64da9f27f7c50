package main

import (
	"fmt"
	"io"
	"os"

	"github.com/kesuzu/llgram/driver"
	"github.com/spf13/cobra"
)

var parseFlags = struct {
	source *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "parse <compiled grammar path>",
		Short:   "Parse a text stream against a compiled grammar",
		Example: `  cat src | llgram parse grammar.json`,
		Args:    cobra.ExactArgs(1),
		RunE:    runParse,
	}
	parseFlags.source = cmd.Flags().StringP("source", "s", "", "source file path (default stdin)")
	rootCmd.AddCommand(cmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	cg, err := readCompiledGrammar(args[0])
	if err != nil {
		return err
	}

	var r io.Reader = os.Stdin
	if *parseFlags.source != "" {
		f, err := os.Open(*parseFlags.source)
		if err != nil {
			return fmt.Errorf("cannot open the source file %s: %w", *parseFlags.source, err)
		}
		defer f.Close()
		r = f
	}
	src, err := io.ReadAll(r)
	if err != nil {
		return err
	}

	tree, err := driver.Parse(cg, string(src), cg.Grammar.Symbols.Terminals())
	if err != nil {
		return err
	}

	driver.PrintTree(os.Stdout, tree)
	return nil
}
