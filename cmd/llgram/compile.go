package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/kesuzu/llgram/ebnf"
	"github.com/kesuzu/llgram/grammar"
	"github.com/spf13/cobra"
)

var compileFlags = struct {
	output *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "compile [grammar file]",
		Short:   "Compile an EBNF grammar into a portable LL(1) parsing table",
		Example: `  llgram compile grammar.ebnf -o grammar.json`,
		Args:    cobra.MaximumNArgs(1),
		RunE:    runCompile,
	}
	compileFlags.output = cmd.Flags().StringP("output", "o", "", "output file path (default stdout)")
	rootCmd.AddCommand(cmd)
}

func runCompile(cmd *cobra.Command, args []string) error {
	g, err := readGrammar(args)
	if err != nil {
		return fmt.Errorf("cannot read the grammar: %w", err)
	}

	cg, err := grammar.Compile(g)
	if err != nil {
		return err
	}

	sg, err := cg.Serialize()
	if err != nil {
		return fmt.Errorf("cannot compress the parsing table: %w", err)
	}

	b, err := json.MarshalIndent(sg, "", "  ")
	if err != nil {
		return err
	}

	w := os.Stdout
	if *compileFlags.output != "" {
		f, err := os.OpenFile(*compileFlags.output, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
		if err != nil {
			return fmt.Errorf("cannot open the output file %s: %w", *compileFlags.output, err)
		}
		defer f.Close()
		w = f
	}
	fmt.Fprintln(w, string(b))
	return nil
}

func readGrammar(args []string) (*ebnf.Grammar, error) {
	var r io.Reader = os.Stdin
	if len(args) > 0 {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, fmt.Errorf("cannot open the grammar file %s: %w", args[0], err)
		}
		defer f.Close()
		r = f
	}
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return ebnf.Parse(string(src))
}

func readCompiledGrammar(path string) (*grammar.CompiledGrammar, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open the compiled grammar file %s: %w", path, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	sg := &grammar.SerializedGrammar{}
	if err := json.Unmarshal(data, sg); err != nil {
		return nil, err
	}
	return grammar.Deserialize(sg), nil
}
