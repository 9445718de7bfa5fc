package main

import (
	"fmt"

	"github.com/kboyd/cflab/grammar/generate"
	"github.com/spf13/pflag"
)

func runGenerate(args []string) error {
	fs := pflag.NewFlagSet("generate", pflag.ContinueOnError)
	grammarFile := fs.StringP("grammar", "g", "-", "grammar file to enumerate, '-' for stdin")
	min := fs.Int("min", 0, "minimum string length")
	max := fs.Int("max", 8, "maximum string length")
	rightmost := fs.Bool("rightmost", false, "expand the rightmost Nonterminal instead of the leftmost")
	all := fs.Bool("all", false, "yield every derivation, including duplicate strings")
	if err := fs.Parse(args); err != nil {
		return err
	}

	g, err := readGrammar(*grammarFile)
	if err != nil {
		return err
	}

	dir := generate.Leftmost
	if *rightmost {
		dir = generate.Rightmost
	}
	strs := generate.Generate(g, generate.Config{Min: *min, Max: *max, Direction: dir, Dedup: !*all})
	for _, s := range strs {
		fmt.Println(s)
	}
	return nil
}
