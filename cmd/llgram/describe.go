package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/kesuzu/llgram/grammar"
	"github.com/kesuzu/llgram/symbol"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:     "describe <grammar file>",
		Short:   "Print the normalized productions, FIRST/FOLLOW sets, and parsing table",
		Example: `  llgram describe grammar.ebnf`,
		Args:    cobra.ExactArgs(1),
		RunE:    runDescribe,
	}
	rootCmd.AddCommand(cmd)
}

func runDescribe(cmd *cobra.Command, args []string) error {
	g, err := readGrammar(args)
	if err != nil {
		return fmt.Errorf("cannot read the grammar: %w", err)
	}
	cg, err := grammar.Compile(g)
	if err != nil {
		return err
	}
	return writeDescription(os.Stdout, cg)
}

type describeProduction struct {
	Num  int
	Text string
}

type describeSet struct {
	Nonterminal string
	Literals    string
}

type describeCell struct {
	Nonterminal string
	Lookahead   string
	Production  int
}

type describeData struct {
	Productions []describeProduction
	First       []describeSet
	Follow      []describeSet
	Table       []describeCell
}

const describeTemplate = `# Productions

{{ range .Productions -}}
{{ printf "%4v" .Num }} {{ .Text }}
{{ end }}
# FIRST

{{ range .First -}}
{{ .Nonterminal }}: {{ .Literals }}
{{ end }}
# FOLLOW

{{ range .Follow -}}
{{ .Nonterminal }}: {{ .Literals }}
{{ end }}
# Table

{{ range .Table -}}
table[{{ .Nonterminal }}][{{ printf "%q" .Lookahead }}] = {{ .Production }}
{{ end -}}
`

func writeDescription(w io.Writer, cg *grammar.CompiledGrammar) error {
	data := describeData{}

	for _, prod := range cg.Grammar.Productions.All() {
		data.Productions = append(data.Productions, describeProduction{Num: prod.Num, Text: prod.String()})
	}

	nts := cg.Grammar.Symbols.Nonterminals()
	for _, ntName := range nts {
		nt := symbol.Nonterminal(ntName)
		lits := cg.First.Terminals(nt)
		if cg.First.HasEmpty(nt) {
			lits = append(append([]string{}, lits...), "ε")
		}
		data.First = append(data.First, describeSet{Nonterminal: ntName, Literals: strings.Join(lits, ", ")})
	}
	for _, ntName := range nts {
		nt := symbol.Nonterminal(ntName)
		lits := cg.Follow.Terminals(nt)
		if cg.Follow.HasEOF(nt) {
			lits = append(append([]string{}, lits...), "<eof>")
		}
		data.Follow = append(data.Follow, describeSet{Nonterminal: ntName, Literals: strings.Join(lits, ", ")})
	}
	for _, ntName := range nts {
		nt := symbol.Nonterminal(ntName)
		lits := append(append([]string{}, cg.Grammar.Symbols.Terminals()...), symbol.EOF)
		for _, lit := range lits {
			prodNum, ok := cg.Table.Lookup(nt, lit)
			if !ok {
				continue
			}
			display := lit
			if lit == symbol.EOF {
				display = "<eof>"
			}
			data.Table = append(data.Table, describeCell{Nonterminal: ntName, Lookahead: display, Production: prodNum})
		}
	}

	tmpl, err := template.New("describe").Parse(describeTemplate)
	if err != nil {
		return err
	}
	return tmpl.Execute(w, data)
}
